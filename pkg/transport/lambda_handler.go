package transport

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/employee-service/pkg/resource"
	"github.com/rs/zerolog/log"
)

// LambdaHandler adapta eventos do API Gateway (proxy integration) para o
// dispatcher do recurso.
type LambdaHandler struct {
	dispatcher Dispatcher
	flush      func() error
}

type LambdaOption func(*LambdaHandler)

// WithFlusher registra uma função chamada ao fim de cada invocação, antes
// do congelamento do ambiente (ex: flush do statsd).
func WithFlusher(fn func() error) LambdaOption {
	return func(h *LambdaHandler) { h.flush = fn }
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(d Dispatcher, opts ...LambdaOption) *LambdaHandler {
	h := &LambdaHandler{dispatcher: d}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processa a requisição Lambda. Erros de negócio viram status HTTP no
// envelope; o erro de retorno fica sempre nil para o API Gateway não
// devolver 502.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = withCorrelation(ctx, headerValue(req.Headers, HeaderCorrelationID))

	resp := h.dispatcher.Handle(ctx, resource.Request{
		Method:          req.HTTPMethod,
		Resource:        req.Resource,
		PathParameters:  req.PathParameters,
		QueryParameters: req.QueryStringParameters,
		Body:            req.Body,
	})

	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers[HeaderCorrelationID] = CorrelationID(ctx)

	if h.flush != nil {
		if err := h.flush(); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("falha ao descarregar métricas")
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       resp.Body,
	}, nil
}
