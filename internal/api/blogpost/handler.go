package blogpost

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

const basePath = "/api/v1/blogpost"

// BlogPostService define o contrato dos casos de uso de post usados pelo Handler.
type BlogPostService interface {
	List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]]
	ListRecent(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]]
	ListByTag(ctx context.Context, tag string, req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]]
	GetByID(ctx context.Context, id int64) domain.Result[domain.BlogPost]
	Create(ctx context.Context, req domain.BlogPostRequest) domain.Result[domain.BlogPost]
	Update(ctx context.Context, id int64, req domain.BlogPostRequest) domain.Result[domain.BlogPost]
	Delete(ctx context.Context, id int64) domain.Result[domain.BlogPost]
}

type Handler struct {
	Service BlogPostService
	Logger  logger.Logger
}

func NewHandler(svc BlogPostService, log logger.Logger) *Handler {
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
		h.Logger.Error("Falha ao escrever resposta de post", err)
	}
}

// listing é o fluxo comum das três listagens de posts.
func (h *Handler) listing(w http.ResponseWriter, r *http.Request, path string, extra func(hateoas.Builder) hateoas.Links,
	fetch func(domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]]) {
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, fetch(req), func(p domain.Page[domain.BlogPost]) interface{} {
		links := b.PageLinks(path, p.CurrentPage, p.TotalPages, p.PageSize).Merge(extra(b))
		return hateoas.NewCollection(p, links, func(bp domain.BlogPost) hateoas.Links { return itemLinks(b, bp.ID) })
	}))
}

// List lida com GET /api/v1/blogpost.
// @Summary Lista posts do blog
// @Description Retorna a lista paginada de posts, do mais recente para o mais antigo.
// @Tags blogpost
// @Produce json
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.BlogPost]
// @Success 204 "Não há posts cadastrados"
// @Failure 400 {object} domain.ErrorResponse
// @Router /blogpost [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, basePath, func(b hateoas.Builder) hateoas.Links {
		return hateoas.Links{
			"create":   b.URL(basePath, nil),
			"recentes": b.URL(basePath+"/recentes", nil),
		}
	}, func(req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]] {
		return h.Service.List(r.Context(), req)
	})
}

// ListRecent lida com GET /api/v1/blogpost/recentes.
// @Summary Lista posts mais recentes
// @Tags blogpost
// @Produce json
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.BlogPost]
// @Success 204 "Não há posts recentes"
// @Router /blogpost/recentes [get]
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, basePath+"/recentes", getAll, func(req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]] {
		return h.Service.ListRecent(r.Context(), req)
	})
}

// ListByTag lida com GET /api/v1/blogpost/tag/{tag}.
// @Summary Busca posts por tag
// @Description Filtra por tag, sem diferenciar maiúsculas, aceitando correspondência parcial.
// @Tags blogpost
// @Produce json
// @Param tag path string true "Tag"
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.BlogPost]
// @Success 204 "Não há posts com a tag"
// @Router /blogpost/tag/{tag} [get]
func (h *Handler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	h.listing(w, r, basePath+"/tag/"+url.PathEscape(tag), getAll, func(req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]] {
		return h.Service.ListByTag(r.Context(), tag, req)
	})
}

func getAll(b hateoas.Builder) hateoas.Links {
	return hateoas.Links{"getAll": b.URL(basePath, nil)}
}

// GetByID lida com GET /api/v1/blogpost/{id}.
// @Summary Obtém post por ID
// @Tags blogpost
// @Produce json
// @Param id path int true "ID do post"
// @Success 200 {object} hateoas.Resource[domain.BlogPost]
// @Failure 404 {object} domain.ErrorResponse "Post não encontrado"
// @Router /blogpost/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.GetByID(r.Context(), id), func(p domain.BlogPost) interface{} {
		return hateoas.Resource[domain.BlogPost]{Data: p, Links: itemLinks(b, p.ID).Merge(getAll(b))}
	}))
}

// Create lida com POST /api/v1/blogpost.
// @Summary Cadastra um novo post
// @Tags blogpost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body domain.BlogPostRequest true "Dados do post"
// @Success 201 {object} hateoas.Resource[domain.BlogPost]
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse "Apenas ADMIN"
// @Router /blogpost [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.BlogPostRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.Create(r.Context(), req), func(p domain.BlogPost) interface{} {
		return hateoas.Resource[domain.BlogPost]{Data: p, Links: itemLinks(b, p.ID)}
	}))
}

// Update lida com PUT /api/v1/blogpost/{id}.
// @Summary Atualiza um post
// @Tags blogpost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do post"
// @Param post body domain.BlogPostRequest true "Dados do post"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} domain.ErrorResponse "Post não encontrado"
// @Router /blogpost/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	var req domain.BlogPostRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Update(r.Context(), id, req), func(p domain.BlogPost) interface{} { return p }))
}

// Delete lida com DELETE /api/v1/blogpost/{id}.
// @Summary Remove um post
// @Tags blogpost
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do post"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} domain.ErrorResponse "Post não encontrado"
// @Router /blogpost/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Delete(r.Context(), id), func(p domain.BlogPost) interface{} { return p }))
}
