package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/raywall/employee-service/pkg/resource"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes acompanha o limite de payload do API Gateway.
const maxBodyBytes = 10 << 20

// Dispatcher é o que os front ends precisam do resource.Handler.
type Dispatcher interface {
	Handle(ctx context.Context, req resource.Request) resource.Response
}

// NewRouter registra os templates do recurso no gorilla/mux. O template de
// busca só atende GET para que DELETE /{resource}/search caia na rota {id}.
// Caminhos e métodos desconhecidos seguem para o dispatcher, que responde
// com UnrecognizedRequest.
func NewRouter(templates []string, d Dispatcher) http.Handler {
	router := mux.NewRouter()
	handler := dispatchHandler(d)

	for _, tpl := range templates {
		route := router.Handle(tpl, handler)
		if strings.HasSuffix(tpl, "/search") {
			route.Methods(http.MethodGet)
		}
	}

	router.NotFoundHandler = handler
	router.MethodNotAllowedHandler = handler
	return ObservabilityMiddleware(router)
}

// StartHTTPServer sobe o servidor local na porta informada.
func StartHTTPServer(port int, h *resource.Handler) error {
	router := NewRouter(h.Router().Templates(), h)

	addr := fmt.Sprintf(":%d", port)
	log.Info().Msgf("Servidor HTTP ouvindo em %s", addr)

	return http.ListenAndServe(addr, router)
}

func dispatchHandler(d Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Msg("falha ao ler o corpo")
		}
		defer r.Body.Close()

		resp := d.Handle(r.Context(), toResourceRequest(r, string(body)))

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.WriteString(w, resp.Body); err != nil {
			log.Ctx(r.Context()).Warn().Err(err).Msg("falha ao escrever resposta")
		}
	}
}

// toResourceRequest usa o template da rota casada como Resource, no mesmo
// formato do campo resource do API Gateway. Sem rota casada, vale o path.
func toResourceRequest(r *http.Request, body string) resource.Request {
	template := r.URL.Path
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			template = tpl
		}
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	return resource.Request{
		Method:          r.Method,
		Resource:        template,
		PathParameters:  mux.Vars(r),
		QueryParameters: query,
		Body:            body,
	}
}
