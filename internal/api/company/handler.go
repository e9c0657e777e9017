package company

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"remoteready/internal/api/hateoas"
	"remoteready/internal/domain"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/responder"
)

const basePath = "/api/v1/empresa"

// CompanyService define o contrato dos casos de uso de empresa usados pelo Handler.
type CompanyService interface {
	List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.Company]]
	ListByArea(ctx context.Context, area string, req domain.PageRequest) domain.Result[domain.Page[domain.Company]]
	ListHiring(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.Company]]
	GetByID(ctx context.Context, id int64) domain.Result[domain.Company]
	Create(ctx context.Context, req domain.CompanyRequest) domain.Result[domain.Company]
	Update(ctx context.Context, id int64, req domain.CompanyRequest) domain.Result[domain.Company]
	Delete(ctx context.Context, id int64) domain.Result[domain.Company]
}

type Handler struct {
	Service CompanyService
	Logger  logger.Logger
}

func NewHandler(svc CompanyService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func itemLinks(b hateoas.Builder, id int64) hateoas.Links {
	return hateoas.Links{
		"self":   b.Path("%s/%d", basePath, id),
		"update": b.Path("%s/%d", basePath, id),
		"delete": b.Path("%s/%d", basePath, id),
	}
}

func (h *Handler) logWrite(err error) {
	if err != nil {
		h.Logger.Error("Falha ao escrever resposta de empresa", err)
	}
}

// List lida com GET /api/v1/empresa.
// @Summary Lista empresas
// @Description Retorna a lista paginada de empresas cadastradas.
// @Tags empresa
// @Produce json
// @Security BearerAuth
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.Company]
// @Success 204 "Não há empresas cadastradas"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /empresa [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.List(r.Context(), req), func(p domain.Page[domain.Company]) interface{} {
		links := b.PageLinks(basePath, p.CurrentPage, p.TotalPages, p.PageSize).Merge(hateoas.Links{
			"create": b.URL(basePath, nil),
			"hiring": b.URL(basePath+"/contratando", nil),
		})
		return hateoas.NewCollection(p, links, func(c domain.Company) hateoas.Links { return itemLinks(b, c.ID) })
	}))
}

// ListByArea lida com GET /api/v1/empresa/area/{area}.
// @Summary Busca empresas por área
// @Description Filtra por área, sem diferenciar maiúsculas, aceitando correspondência parcial.
// @Tags empresa
// @Produce json
// @Security BearerAuth
// @Param area path string true "Área de atuação"
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.Company]
// @Success 204 "Não há empresas na área"
// @Router /empresa/area/{area} [get]
func (h *Handler) ListByArea(w http.ResponseWriter, r *http.Request) {
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	area := chi.URLParam(r, "area")
	path := basePath + "/area/" + url.PathEscape(area)

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.ListByArea(r.Context(), area, req), func(p domain.Page[domain.Company]) interface{} {
		links := b.PageLinks(path, p.CurrentPage, p.TotalPages, p.PageSize).
			Merge(hateoas.Links{"getAll": b.URL(basePath, nil)})
		return hateoas.NewCollection(p, links, func(c domain.Company) hateoas.Links { return itemLinks(b, c.ID) })
	}))
}

// ListHiring lida com GET /api/v1/empresa/contratando.
// @Summary Lista empresas contratando
// @Tags empresa
// @Produce json
// @Security BearerAuth
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.Company]
// @Success 204 "Não há empresas contratando"
// @Router /empresa/contratando [get]
func (h *Handler) ListHiring(w http.ResponseWriter, r *http.Request) {
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	path := basePath + "/contratando"

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.ListHiring(r.Context(), req), func(p domain.Page[domain.Company]) interface{} {
		links := b.PageLinks(path, p.CurrentPage, p.TotalPages, p.PageSize).
			Merge(hateoas.Links{"getAll": b.URL(basePath, nil)})
		return hateoas.NewCollection(p, links, func(c domain.Company) hateoas.Links { return itemLinks(b, c.ID) })
	}))
}

// GetByID lida com GET /api/v1/empresa/{id}.
// @Summary Obtém empresa por ID
// @Tags empresa
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da empresa"
// @Success 200 {object} hateoas.Resource[domain.Company]
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresa/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.GetByID(r.Context(), id), func(c domain.Company) interface{} {
		links := itemLinks(b, c.ID).Merge(hateoas.Links{"getAll": b.URL(basePath, nil)})
		return hateoas.Resource[domain.Company]{Data: c, Links: links}
	}))
}

// Create lida com POST /api/v1/empresa.
// @Summary Cadastra uma empresa
// @Tags empresa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param empresa body domain.CompanyRequest true "Dados da empresa"
// @Success 201 {object} hateoas.Resource[domain.Company]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse "Apenas ADMIN"
// @Router /empresa [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CompanyRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.Create(r.Context(), req), func(c domain.Company) interface{} {
		return hateoas.Resource[domain.Company]{Data: c, Links: itemLinks(b, c.ID)}
	}))
}

// Update lida com PUT /api/v1/empresa/{id}.
// @Summary Atualiza uma empresa
// @Tags empresa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da empresa"
// @Param empresa body domain.CompanyRequest true "Dados da empresa"
// @Success 200 {object} domain.Company
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresa/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	var req domain.CompanyRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Update(r.Context(), id, req), func(c domain.Company) interface{} { return c }))
}

// Delete lida com DELETE /api/v1/empresa/{id}.
// @Summary Remove uma empresa
// @Tags empresa
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da empresa"
// @Success 200 {object} domain.Company
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresa/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Delete(r.Context(), id), func(c domain.Company) interface{} { return c }))
}
