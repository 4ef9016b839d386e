package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/employee-service/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDispatcher guarda a última requisição e devolve uma resposta fixa.
type recordingDispatcher struct {
	last   resource.Request
	corrID string
	resp   resource.Response
}

func (d *recordingDispatcher) Handle(ctx context.Context, req resource.Request) resource.Response {
	d.last = req
	d.corrID = CorrelationID(ctx)
	return d.resp
}

func okDispatcher() *recordingDispatcher {
	return &recordingDispatcher{resp: resource.Response{
		StatusCode: 200,
		Body:       `{"ok":true}`,
		Headers: map[string]string{
			"Access-Control-Allow-Origin": "*",
			"Content-Type":                "application/json",
		},
	}}
}

var templates = resource.NewRouter("employees").Templates()

func TestHTTPRouter_Templates(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		wantResource string
		wantParams   map[string]string
		wantQuery    map[string]string
	}{
		{"search", "GET", "/employees/search?email_address=a@x&page=2", "/employees/search", nil, map[string]string{"email_address": "a@x", "page": "2"}},
		{"get by id", "GET", "/employees/abc-1", "/employees/{id}", map[string]string{"id": "abc-1"}, map[string]string{}},
		{"delete by id", "DELETE", "/employees/abc-1", "/employees/{id}", map[string]string{"id": "abc-1"}, map[string]string{}},
		{"delete search id", "DELETE", "/employees/search", "/employees/{id}", map[string]string{"id": "search"}, map[string]string{}},
		{"list", "GET", "/employees", "/employees", nil, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := okDispatcher()
			handler := NewRouter(templates, d)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, 200, rec.Code)
			assert.Equal(t, tt.method, d.last.Method)
			assert.Equal(t, tt.wantResource, d.last.Resource)
			if tt.wantParams == nil {
				assert.Empty(t, d.last.PathParameters)
			} else {
				assert.Equal(t, tt.wantParams, d.last.PathParameters)
			}
			assert.Equal(t, tt.wantQuery, d.last.QueryParameters)
		})
	}
}

func TestHTTPRouter_ForwardsBodyAndHeaders(t *testing.T) {
	d := okDispatcher()
	handler := NewRouter(templates, d)

	req := httptest.NewRequest("PUT", "/employees", strings.NewReader(`{"full_name":"Ana"}`))
	req.Header.Set(HeaderCorrelationID, "corr-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, `{"full_name":"Ana"}`, d.last.Body)
	assert.Equal(t, "corr-123", d.corrID)

	res := rec.Result()
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, "corr-123", res.Header.Get(HeaderCorrelationID))
	assert.NotEmpty(t, res.Header.Get(HeaderLatency))
}

func TestHTTPRouter_UnknownPathReachesDispatcher(t *testing.T) {
	d := okDispatcher()
	d.resp = resource.Response{StatusCode: 400, Body: `{"error":"UnrecognizedRequest"}`}
	handler := NewRouter(templates, d)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/departments/7", nil))

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "/departments/7", d.last.Resource)
	assert.NotEmpty(t, d.corrID)
	assert.NotEmpty(t, rec.Header().Get(HeaderCorrelationID))
}

func TestHTTPRouter_GeneratesCorrelationID(t *testing.T) {
	d := okDispatcher()
	handler := NewRouter(templates, d)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))

	assert.Len(t, d.corrID, 36)
	assert.Equal(t, d.corrID, rec.Header().Get(HeaderCorrelationID))
}

func TestLambdaHandler_Handle(t *testing.T) {
	d := okDispatcher()
	flushed := 0
	handler := NewLambdaHandler(d, WithFlusher(func() error {
		flushed++
		return nil
	}))

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Resource:              "/employees/{id}",
		Path:                  "/employees/e-1",
		PathParameters:        map[string]string{"id": "e-1"},
		QueryStringParameters: map[string]string{"x": "y"},
		Headers:               map[string]string{"X-Correlation-Id": "corr-9"},
		Body:                  "",
	})
	require.NoError(t, err)

	assert.Equal(t, resource.Request{
		Method:          "GET",
		Resource:        "/employees/{id}",
		PathParameters:  map[string]string{"id": "e-1"},
		QueryParameters: map[string]string{"x": "y"},
	}, d.last)
	assert.Equal(t, "corr-9", d.corrID)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, resp.Body)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "corr-9", resp.Headers[HeaderCorrelationID])
	assert.Equal(t, 1, flushed)
}

func TestLambdaHandler_ErrorStatusIsNotAnError(t *testing.T) {
	d := okDispatcher()
	d.resp = resource.Response{StatusCode: 500, Body: `{"error":"StoreError"}`}
	handler := NewLambdaHandler(d, WithFlusher(func() error { return errors.New("statsd down") }))

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Resource:   "/employees",
	})

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.NotEmpty(t, resp.Headers[HeaderCorrelationID])
}
