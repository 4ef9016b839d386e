package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"
)

type ctxKey string

// ContextKeyCorrID guarda o correlation id no contexto da requisição.
const ContextKeyCorrID ctxKey = "correlation_id"

// CorrelationID devolve o id associado ao contexto, ou "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyCorrID).(string)
	return id
}

// withCorrelation anexa ao ctx o id e um logger que o carrega em todas as linhas.
func withCorrelation(ctx context.Context, corrID string) context.Context {
	if corrID == "" {
		corrID = uuid.NewString()
	}
	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	return context.WithValue(ctx, ContextKeyCorrID, corrID)
}

// headerValue busca o header ignorando caixa; o API Gateway repassa os
// nomes como o cliente enviou.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	duration := time.Since(rw.startTime)
	rw.Header().Set(HeaderLatency, fmt.Sprintf("%d", duration.Milliseconds()))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// ObservabilityMiddleware propaga o correlation id e mede a latência de
// cada requisição HTTP.
func ObservabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := withCorrelation(r.Context(), r.Header.Get(HeaderCorrelationID))
		w.Header().Set(HeaderCorrelationID, CorrelationID(ctx))

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			startTime:      time.Now(),
		}

		next.ServeHTTP(wrapper, r.WithContext(ctx))
	})
}
