// Package hateoas monta os envelopes {data, links, pagina} e os parâmetros comuns
// (paginação e ids de rota) usados por todos os handlers da API.
package hateoas

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/responder"
)

// Nomes dos parâmetros de paginação aceitos na query string.
const (
	ParamPage     = "PaginaAtual"
	ParamPageSize = "LimitePagina"
)

// Links mapeia relação -> URL absoluta. nil é serializado como null.
type Links map[string]*string

// Resource é o envelope de um único recurso.
type Resource[T any] struct {
	Data  T     `json:"data"`
	Links Links `json:"links"`
}

// Collection é o envelope de uma página de recursos.
type Collection[T any] struct {
	Data   []Item[T] `json:"data"`
	Links  Links     `json:"links"`
	Pagina PageInfo  `json:"pagina"`
}

// PageInfo é o bloco "pagina" das listagens.
type PageInfo struct {
	CurrentPage  int `json:"paginaAtual"`
	TotalPages   int `json:"totalPaginas"`
	TotalRecords int `json:"totalRegistros"`
}

// Item serializa a entidade com os seus próprios links no mesmo objeto JSON.
type Item[T any] struct {
	Value T
	Links Links
}

func (i Item[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(i.Value)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("item não é um objeto JSON: %w", err)
	}
	if i.Links != nil {
		links, err := json.Marshal(i.Links)
		if err != nil {
			return nil, err
		}
		fields["links"] = links
	}
	return json.Marshal(fields)
}

// Builder gera URLs absolutas a partir do esquema e host da requisição.
type Builder struct {
	base string
}

// NewBuilder cria um Builder para a requisição corrente.
func NewBuilder(r *http.Request) Builder {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(fwd, ",")[0]))
	}
	return Builder{base: scheme + "://" + r.Host}
}

// URL monta a URL absoluta de path com a query opcional.
func (b Builder) URL(path string, query url.Values) *string {
	u := b.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return &u
}

// Path formata um path com argumentos (fmt) e devolve a URL absoluta.
func (b Builder) Path(format string, args ...interface{}) *string {
	return b.URL(fmt.Sprintf(format, args...), nil)
}

// PageURL devolve a URL de path na página informada.
func (b Builder) PageURL(path string, page, pageSize int) *string {
	return b.URL(path, url.Values{
		ParamPage:     []string{strconv.Itoa(page)},
		ParamPageSize: []string{strconv.Itoa(pageSize)},
	})
}

// PageLinks devolve self, first, prev, next e last de uma listagem.
// prev e next são nil nas bordas.
func (b Builder) PageLinks(path string, current, totalPages, pageSize int) Links {
	links := Links{
		"self":  b.PageURL(path, current, pageSize),
		"first": b.PageURL(path, 1, pageSize),
		"prev":  nil,
		"next":  nil,
		"last":  b.PageURL(path, totalPages, pageSize),
	}
	if current > 1 {
		links["prev"] = b.PageURL(path, current-1, pageSize)
	}
	if current < totalPages {
		links["next"] = b.PageURL(path, current+1, pageSize)
	}
	return links
}

// NewCollection monta o envelope de uma página. itemLinks pode ser nil.
func NewCollection[T any](page domain.Page[T], links Links, itemLinks func(T) Links) Collection[T] {
	items := make([]Item[T], 0, len(page.Items))
	for _, v := range page.Items {
		it := Item[T]{Value: v}
		if itemLinks != nil {
			it.Links = itemLinks(v)
		}
		items = append(items, it)
	}
	return Collection[T]{
		Data:  items,
		Links: links,
		Pagina: PageInfo{
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalRecords: page.TotalRecords,
		},
	}
}

// Merge copia as entradas de extra em links e devolve links.
func (l Links) Merge(extra Links) Links {
	for k, v := range extra {
		l[k] = v
	}
	return l
}

// PageRequest lê PaginaAtual e LimitePagina. Ausentes assumem os padrões;
// valores não numéricos são rejeitados.
func PageRequest(r *http.Request) (domain.PageRequest, apperror.AppError) {
	page, err := intQuery(r, ParamPage, domain.DefaultPage)
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := intQuery(r, ParamPageSize, domain.DefaultPageSize)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.NewPageRequest(page, size), nil
}

func intQuery(r *http.Request, name string, def int) (int, apperror.AppError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um número inteiro.", name))
	}
	return v, nil
}

// PathID lê um id numérico da rota.
func PathID(r *http.Request, name string) (int64, apperror.AppError) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um número inteiro.", name))
	}
	return id, nil
}

// QueryID lê um id numérico obrigatório da query string.
func QueryID(r *http.Request, name string) (int64, apperror.AppError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro '%s' deve ser um número inteiro.", name))
	}
	return id, nil
}

// Write envia o resultado do serviço: em sucesso, o corpo montado por body com o status
// do resultado; em falha, o ErrorResponse correspondente.
func Write[T any](w http.ResponseWriter, res domain.Result[T], body func(T) interface{}) error {
	if !res.IsSuccess() {
		responder.Error(w, res.Err())
		return nil
	}
	return responder.JSON(w, res.StatusCode(), body(res.Value()))
}
