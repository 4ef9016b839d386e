package resource

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/raywall/employee-service/pkg/config"
)

// Response é o envelope uniforme devolvido ao front end HTTP.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// ItemList é o corpo de GET /{resource} e GET /{resource}/{id}.
type ItemList struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// Message é o corpo de respostas sem registro, como o DELETE.
type Message struct {
	Message string `json:"message"`
}

// Formatter serializa resultados e erros e anexa os cabeçalhos CORS fixos.
type Formatter struct {
	cors map[string]string
}

func NewFormatter(cfg config.CORSConf) *Formatter {
	return &Formatter{cors: map[string]string{
		"Access-Control-Allow-Headers": strings.Join(cfg.AllowHeaders, ","),
		"Access-Control-Allow-Origin":  cfg.AllowOrigin,
		"Access-Control-Allow-Methods": strings.Join(cfg.AllowMethods, ","),
	}}
}

// Success serializa qualquer resultado com status 200.
func (f *Formatter) Success(result any) Response {
	body, err := json.Marshal(result)
	if err != nil {
		return f.Error(err)
	}
	return f.build(http.StatusOK, body)
}

// Error converte o erro no envelope: ValidationError e UnrecognizedRequest
// viram 400 com sua forma estruturada; o resto (store) vira 500.
func (f *Formatter) Error(err error) Response {
	var verr *ValidationError
	var unrecognized *UnrecognizedRequestError

	var status int
	var payload any
	switch {
	case errors.As(err, &verr):
		status, payload = http.StatusBadRequest, verr
	case errors.As(err, &unrecognized):
		status, payload = http.StatusBadRequest, unrecognized
	default:
		status, payload = http.StatusInternalServerError, map[string]string{
			"error":   "StoreError",
			"message": err.Error(),
		}
	}

	body, mErr := json.Marshal(payload)
	if mErr != nil {
		body = []byte(`{"error":"InternalError"}`)
	}
	return f.build(status, body)
}

func (f *Formatter) build(status int, body []byte) Response {
	headers := make(map[string]string, len(f.cors)+1)
	for k, v := range f.cors {
		headers[k] = v
	}
	headers["Content-Type"] = "application/json"
	return Response{StatusCode: status, Body: string(body), Headers: headers}
}
