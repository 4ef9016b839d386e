package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/employee-service/pkg/config"
	"github.com/raywall/employee-service/pkg/metrics"
	"github.com/rs/zerolog/log"
)

// Request é o envelope de entrada, já traduzido pelo front end HTTP.
// Resource é o template da rota (ex: "/employees/{id}"), não o path concreto.
type Request struct {
	Method          string
	Resource        string
	PathParameters  map[string]string
	QueryParameters map[string]string
	Body            string
}

// Handler é o dispatcher: roteia, valida, fala com o Repository e formata.
// Não guarda estado entre requisições além das dependências injetadas.
type Handler struct {
	desc      Descriptor
	router    *Router
	repo      Repository
	formatter *Formatter
	recorder  *metrics.Recorder
	newID     func() string
}

type Option func(*Handler)

// WithRecorder liga as métricas por requisição.
func WithRecorder(r *metrics.Recorder) Option {
	return func(h *Handler) { h.recorder = r }
}

// WithIDGenerator troca o gerador de ids (uuid v4 por padrão).
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) { h.newID = fn }
}

// WithCORS troca os cabeçalhos CORS padrão.
func WithCORS(cfg config.CORSConf) Option {
	return func(h *Handler) { h.formatter = NewFormatter(cfg) }
}

func NewHandler(desc Descriptor, repo Repository, opts ...Option) *Handler {
	if desc.HashKey == "" {
		desc.HashKey = "id"
	}
	if desc.DefaultPageSize < 1 {
		desc.DefaultPageSize = 10
	}

	h := &Handler{
		desc:      desc,
		router:    NewRouter(desc.Name),
		repo:      repo,
		formatter: NewFormatter(config.Default().CORS),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router expõe a tabela de rotas para o front end HTTP.
func (h *Handler) Router() *Router {
	return h.router
}

// Handle processa uma requisição e sempre devolve um envelope bem formado,
// inclusive quando uma operação entra em pânico.
func (h *Handler) Handle(ctx context.Context, req Request) (resp Response) {
	start := time.Now()
	logger := log.Ctx(ctx).With().
		Str("method", req.Method).
		Str("resource", req.Resource).
		Logger()
	logger.Debug().Msgf("%s %s", req.Method, req.Resource)

	route := RouteUnknown
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Msg("panic no dispatcher")
			resp = h.formatter.Error(fmt.Errorf("internal error: %v", rec))
		}

		latency := time.Since(start)
		h.recorder.ObserveRequest(route.String(), resp.StatusCode, latency)

		event := logger.Info()
		if resp.StatusCode >= 500 {
			event = logger.Error()
		}
		event.Str("route", route.String()).
			Int("status", resp.StatusCode).
			Int64("latency_ms", latency.Milliseconds()).
			Msg("request completed")
	}()

	match, err := h.router.Match(req.Method, req.Resource, req.PathParameters)
	if err != nil {
		return h.formatter.Error(err)
	}
	route = match.Route

	result, err := h.dispatch(ctx, match, req)
	if err != nil {
		return h.formatter.Error(err)
	}
	return h.formatter.Success(result)
}

func (h *Handler) dispatch(ctx context.Context, match Match, req Request) (any, error) {
	switch match.Route {
	case RouteUpsert:
		return h.upsert(ctx, []byte(req.Body))
	case RouteGet:
		items, err := h.repo.FindByID(ctx, match.ID)
		if err != nil {
			return nil, err
		}
		return ItemList{Items: nonNil(items), Count: len(items)}, nil
	case RouteDelete:
		if err := h.repo.Delete(ctx, match.ID); err != nil {
			return nil, err
		}
		return Message{Message: fmt.Sprintf("Delete %s with id: %s", h.desc.Name, match.ID)}, nil
	case RouteSearch:
		return h.search(ctx, req.QueryParameters)
	case RouteList:
		items, err := h.repo.ScanAll(ctx)
		if err != nil {
			return nil, err
		}
		return ItemList{Items: nonNil(items), Count: len(items)}, nil
	default:
		return nil, &UnrecognizedRequestError{Method: req.Method, Resource: req.Resource}
	}
}

// upsert cria quando o corpo não traz a chave (ou a traz vazia/null) e
// atualiza parcialmente um registro existente quando traz.
func (h *Handler) upsert(ctx context.Context, body []byte) (any, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	if !hasKey(raw, h.desc.HashKey) {
		item, err := h.desc.Create.Validate(body)
		if err != nil {
			return nil, err
		}
		item[h.desc.HashKey] = h.newID()
		if err := h.repo.Put(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	fields, err := h.desc.Update.Validate(body)
	if err != nil {
		return nil, err
	}
	id, _ := fields[h.desc.HashKey].(string)
	delete(fields, h.desc.HashKey)

	upd, err := BuildUpdate(fields)
	if errors.Is(err, ErrEmptyUpdate) {
		return h.notFound(h.repo.Get(ctx, id))
	}
	if err != nil {
		return nil, err
	}
	return h.notFound(h.repo.Update(ctx, id, upd))
}

// notFound traduz ErrNotFound do update (com ou sem campos) no mesmo 400.
// O update sem campos não escreve nada e devolve o registro atual.
func (h *Handler) notFound(item Item, err error) (any, error) {
	if errors.Is(err, ErrNotFound) {
		return nil, NewValidationError(h.desc.HashKey, ReasonNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (h *Handler) search(ctx context.Context, query map[string]string) (any, error) {
	value, ok := query[h.desc.SearchField]
	if !ok {
		return nil, NewValidationError(h.desc.SearchField, "query parameter required")
	}

	pageReq, err := ParsePageRequest(query, h.desc.DefaultPageSize)
	if err != nil {
		return nil, err
	}

	items, err := h.repo.ScanEqual(ctx, h.desc.SearchField, value)
	if err != nil {
		return nil, err
	}
	h.recorder.ObserveSearch(len(items))

	return Paginate(items, pageReq), nil
}

func hasKey(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]
	if !ok {
		return false
	}
	switch string(v) {
	case "null", `""`:
		return false
	}
	return true
}

func nonNil(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return items
}
