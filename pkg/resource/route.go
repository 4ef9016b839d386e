package resource

import "net/http"

// Route identifica a operação resolvida para uma requisição.
type Route int

const (
	RouteUnknown Route = iota
	RouteUpsert
	RouteGet
	RouteDelete
	RouteSearch
	RouteList
)

func (r Route) String() string {
	switch r {
	case RouteUpsert:
		return "upsert"
	case RouteGet:
		return "get"
	case RouteDelete:
		return "delete"
	case RouteSearch:
		return "search"
	case RouteList:
		return "list"
	default:
		return "unknown"
	}
}

// Match é o resultado do roteamento: a operação e os parâmetros extraídos.
type Match struct {
	Route Route
	ID    string
}

// Endpoint é uma entrada da tabela de rotas.
type Endpoint struct {
	Method   string
	Template string
	Route    Route
}

type routeKey struct {
	method   string
	template string
}

// Router resolve (método, template de rota) por igualdade exata.
type Router struct {
	base      string
	endpoints []Endpoint
	routes    map[routeKey]Route
	idParam   string
}

// NewRouter monta a tabela de rotas de um recurso:
//
//	PUT    /{resource}          create ou update
//	GET    /{resource}/{id}     busca por id
//	DELETE /{resource}/{id}     remoção por id
//	GET    /{resource}/search   busca filtrada e paginada
//	GET    /{resource}          scan completo
func NewRouter(name string) *Router {
	base := "/" + name
	r := &Router{
		base:    base,
		idParam: "id",
		endpoints: []Endpoint{
			{http.MethodPut, base, RouteUpsert},
			{http.MethodGet, base + "/{id}", RouteGet},
			{http.MethodDelete, base + "/{id}", RouteDelete},
			{http.MethodGet, base + "/search", RouteSearch},
			{http.MethodGet, base, RouteList},
		},
		routes: make(map[routeKey]Route),
	}
	for _, e := range r.endpoints {
		r.routes[routeKey{method: e.Method, template: e.Template}] = e.Route
	}
	return r
}

// Routes devolve a tabela de rotas na ordem em que foi declarada.
func (r *Router) Routes() []Endpoint {
	out := make([]Endpoint, len(r.endpoints))
	copy(out, r.endpoints)
	return out
}

// Templates devolve os templates de rota atendidos, para registro no
// front end HTTP. A rota de busca vem antes da rota com {id}.
func (r *Router) Templates() []string {
	return []string{r.base + "/search", r.base + "/{id}", r.base}
}

// Match resolve a requisição. Qualquer combinação fora da tabela devolve
// *UnrecognizedRequestError.
func (r *Router) Match(method, resource string, pathParams map[string]string) (Match, error) {
	route, ok := r.routes[routeKey{method: method, template: resource}]
	if !ok {
		return Match{}, &UnrecognizedRequestError{Method: method, Resource: resource}
	}

	m := Match{Route: route}
	if route == RouteGet || route == RouteDelete {
		m.ID = pathParams[r.idParam]
		if m.ID == "" {
			return Match{}, NewValidationError(r.idParam, "path parameter required")
		}
	}
	return m, nil
}
