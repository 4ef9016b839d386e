package resource

import "strconv"

// MaxPageSize limita page_size pedido pelo cliente.
const MaxPageSize = 1000

// PageRequest é a janela pedida pelo cliente (page é 1-indexado).
type PageRequest struct {
	Page     int
	PageSize int
}

// Page é o corpo da resposta da busca.
type Page struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPage  int    `json:"total_page"`
	TotalItems int    `json:"total_items"`
}

// ParsePageRequest lê page e page_size da query string. Ausentes assumem
// 1 e defaultSize; valores não numéricos ou menores que 1 são rejeitados,
// assim como page_size acima de MaxPageSize.
func ParsePageRequest(query map[string]string, defaultSize int) (PageRequest, error) {
	req := PageRequest{Page: 1, PageSize: defaultSize}
	verr := &ValidationError{}

	if v, ok := query["page"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			verr.Add("page", ReasonNotPositive)
		}
		req.Page = n
	}
	if v, ok := query["page_size"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil || n < 1:
			verr.Add("page_size", ReasonNotPositive)
		case n > MaxPageSize:
			verr.Add("page_size", ReasonTooLarge)
		}
		req.PageSize = n
	}

	if len(verr.Fields) > 0 {
		return PageRequest{}, verr
	}
	return req, nil
}

// TotalPages arredonda para cima: 20 itens em páginas de 10 são 2 páginas,
// 25 são 3 e nenhum item é 0.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// Paginate recorta a janela [(page-1)*size, page*size) do conjunto já
// filtrado. Páginas fora do intervalo devolvem lista vazia.
func Paginate(items []Item, req PageRequest) Page {
	page := Page{
		Items:      []Item{},
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPage:  TotalPages(len(items), req.PageSize),
		TotalItems: len(items),
	}

	// page <= TotalPage garante que a multiplicação abaixo não estoura
	if req.Page < 1 || req.PageSize < 1 || req.Page > page.TotalPage {
		return page
	}
	start := (req.Page - 1) * req.PageSize
	end := len(items)
	if len(items)-start > req.PageSize {
		end = start + req.PageSize
	}
	page.Items = items[start:end]
	return page
}
