package domain

import "math"

// Valores padrão de paginação aplicados quando o cliente não informa (ou informa < 1).
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest carrega a página solicitada (1-based) e o tamanho da página.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest cria um PageRequest já normalizado.
func NewPageRequest(page, pageSize int) PageRequest {
	return PageRequest{Page: page, PageSize: pageSize}.Normalize()
}

// Normalize substitui valores menores que 1 pelos padrões.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset é a quantidade de linhas puladas: (page-1)*pageSize.
// Satura em math.MaxInt64, o que deixa a página além do último registro.
func (p PageRequest) Offset() uint64 {
	p = p.Normalize()
	if p.Page-1 > math.MaxInt64/p.PageSize {
		return math.MaxInt64
	}
	return uint64(p.Page-1) * uint64(p.PageSize)
}

// Limit é a quantidade máxima de linhas retornadas.
func (p PageRequest) Limit() uint64 {
	return uint64(p.Normalize().PageSize)
}

// Page é uma fatia de resultados de uma consulta paginada.
// @Description Metadados de paginação.
type Page[T any] struct {
	CurrentPage  int `json:"paginaAtual" example:"1"`
	TotalPages   int `json:"totalPaginas" example:"3"`
	TotalRecords int `json:"totalRegistros" example:"25"`
	PageSize     int `json:"-"`
	Items        []T `json:"-"`
}

// NewPage monta a página calculando totalPages = ceil(total/pageSize).
func NewPage[T any](req PageRequest, total int, items []T) Page[T] {
	req = req.Normalize()
	if total < 0 {
		total = 0
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		CurrentPage:  req.Page,
		TotalPages:   totalPages(total, req.PageSize),
		TotalRecords: total,
		PageSize:     req.PageSize,
		Items:        items,
	}
}

// IsEmpty informa se a página não possui itens.
func (p Page[T]) IsEmpty() bool {
	return len(p.Items) == 0
}

// MapPage converte os itens de uma página preservando os metadados.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalRecords: p.TotalRecords,
		PageSize:     p.PageSize,
		Items:        items,
	}
}

// totalPages é ceil(total/pageSize) sem somar antes de dividir.
func totalPages(total, pageSize int) int {
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
