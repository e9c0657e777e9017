package userpost

import (
	"context"
	"fmt"
	"net/http"

	"remoteready/internal/api/hateoas"
	"remoteready/internal/domain"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/responder"
)

const basePath = "/api/v1/userpost"

// UserPostService define o contrato dos casos de uso de leitura usados pelo Handler.
type UserPostService interface {
	MarkAsRead(ctx context.Context, userID, postID int64) domain.Result[domain.UserPostRead]
	List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.UserPostRead]]
	ListByUser(ctx context.Context, userID int64, req domain.PageRequest) domain.Result[domain.Page[domain.UserPostRead]]
	GetByID(ctx context.Context, id int64) domain.Result[domain.UserPostRead]
	Progress(ctx context.Context, userID int64) domain.Result[domain.ProgressReport]
	CertificateEligibility(ctx context.Context, userID int64) domain.Result[domain.CertificateStatus]
	UpdateStatus(ctx context.Context, id int64, req domain.UserPostStatusRequest) domain.Result[domain.UserPostRead]
	Delete(ctx context.Context, id int64) domain.Result[domain.UserPostRead]
}

// CertificateResponse é a elegibilidade acompanhada dos links de progresso.
type CertificateResponse struct {
	domain.CertificateStatus
	Links hateoas.Links `json:"links"`
}

type Handler struct {
	Service UserPostService
	Logger  logger.Logger
}

func NewHandler(svc UserPostService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func itemLinks(b hateoas.Builder, id int64) hateoas.Links {
	return hateoas.Links{
		"self":   b.Path("%s/%d", basePath, id),
		"update": b.Path("%s/%d", basePath, id),
		"delete": b.Path("%s/%d", basePath, id),
	}
}

func progressLinks(b hateoas.Builder, userID int64) hateoas.Links {
	return hateoas.Links{
		"progresso":  b.Path("%s/progresso/%d", basePath, userID),
		"postsLidos": b.Path("%s/usuario/%d", basePath, userID),
	}
}

func (h *Handler) logWrite(err error) {
	if err != nil {
		h.Logger.Error("Falha ao escrever resposta de leitura", err)
	}
}

// MarkAsRead lida com POST /api/v1/userpost/marcar-lido.
// @Summary Marca post como lido
// @Description Registra a leitura do post pelo usuário. Cada par usuário/post só pode ser marcado uma vez.
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param idUsuario query int true "ID do usuário"
// @Param idPost query int true "ID do post"
// @Success 201 {object} hateoas.Resource[domain.UserPostRead]
// @Failure 400 {object} domain.ErrorResponse "Post já marcado como lido"
// @Router /userpost/marcar-lido [post]
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, perr := hateoas.QueryID(r, "idUsuario")
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	postID, perr := hateoas.QueryID(r, "idPost")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.MarkAsRead(r.Context(), userID, postID), func(up domain.UserPostRead) interface{} {
		links := progressLinks(b, userID).Merge(hateoas.Links{"self": b.Path("%s/%d", basePath, up.ID)})
		return hateoas.Resource[domain.UserPostRead]{Data: up, Links: links}
	}))
}

// List lida com GET /api/v1/userpost.
// @Summary Lista registros de leitura
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.UserPostRead]
// @Success 204 "Não há registros cadastrados"
// @Failure 403 {object} domain.ErrorResponse "Apenas ADMIN"
// @Router /userpost [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.List(r.Context(), req), func(p domain.Page[domain.UserPostRead]) interface{} {
		links := b.PageLinks(basePath, p.CurrentPage, p.TotalPages, p.PageSize)
		return hateoas.NewCollection(p, links, func(up domain.UserPostRead) hateoas.Links { return itemLinks(b, up.ID) })
	}))
}

// ListByUser lida com GET /api/v1/userpost/usuario/{idUsuario}.
// @Summary Lista posts lidos pelo usuário
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param idUsuario path int true "ID do usuário"
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.UserPostRead]
// @Success 204 "Usuário ainda não leu nenhum post"
// @Router /userpost/usuario/{idUsuario} [get]
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, perr := hateoas.PathID(r, "idUsuario")
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	path := fmt.Sprintf("%s/usuario/%d", basePath, userID)
	h.logWrite(hateoas.Write(w, h.Service.ListByUser(r.Context(), userID, req), func(p domain.Page[domain.UserPostRead]) interface{} {
		links := b.PageLinks(path, p.CurrentPage, p.TotalPages, p.PageSize).Merge(hateoas.Links{
			"progresso":   b.Path("%s/progresso/%d", basePath, userID),
			"certificado": b.Path("%s/certificado/%d", basePath, userID),
		})
		return hateoas.NewCollection(p, links, func(up domain.UserPostRead) hateoas.Links { return itemLinks(b, up.ID) })
	}))
}

// Progress lida com GET /api/v1/userpost/progresso/{idUsuario}.
// @Summary Obtém progresso de leitura do usuário
// @Description Total de posts lidos, quantos faltam e se o usuário já pode gerar o certificado.
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param idUsuario path int true "ID do usuário"
// @Success 200 {object} domain.ProgressReport
// @Router /userpost/progresso/{idUsuario} [get]
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, perr := hateoas.PathID(r, "idUsuario")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Progress(r.Context(), userID), func(p domain.ProgressReport) interface{} { return p }))
}

// Certificate lida com GET /api/v1/userpost/certificado/{idUsuario}.
// @Summary Verifica elegibilidade para certificado
// @Description Elegível a partir de 10 posts com status LIDO.
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param idUsuario path int true "ID do usuário"
// @Success 200 {object} CertificateResponse
// @Router /userpost/certificado/{idUsuario} [get]
func (h *Handler) Certificate(w http.ResponseWriter, r *http.Request) {
	userID, perr := hateoas.PathID(r, "idUsuario")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.CertificateEligibility(r.Context(), userID), func(c domain.CertificateStatus) interface{} {
		return CertificateResponse{CertificateStatus: c, Links: progressLinks(b, userID)}
	}))
}

// GetByID lida com GET /api/v1/userpost/{id}.
// @Summary Obtém registro de leitura por ID
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do registro"
// @Success 200 {object} hateoas.Resource[domain.UserPostRead]
// @Failure 404 {object} domain.ErrorResponse "Registro não encontrado"
// @Router /userpost/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.GetByID(r.Context(), id), func(up domain.UserPostRead) interface{} {
		links := itemLinks(b, up.ID).Merge(hateoas.Links{"getAll": b.URL(basePath, nil)})
		return hateoas.Resource[domain.UserPostRead]{Data: up, Links: links}
	}))
}

// UpdateStatus lida com PUT /api/v1/userpost/{id}.
// @Summary Atualiza o status de leitura
// @Tags userpost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do registro"
// @Param status body domain.UserPostStatusRequest true "Novo status"
// @Success 200 {object} domain.UserPostRead
// @Failure 404 {object} domain.ErrorResponse "Registro não encontrado"
// @Router /userpost/{id} [put]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	var req domain.UserPostStatusRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.UpdateStatus(r.Context(), id, req), func(up domain.UserPostRead) interface{} { return up }))
}

// Delete lida com DELETE /api/v1/userpost/{id}.
// @Summary Remove um registro de leitura
// @Tags userpost
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do registro"
// @Success 200 {object} domain.UserPostRead
// @Failure 404 {object} domain.ErrorResponse "Registro não encontrado"
// @Router /userpost/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Delete(r.Context(), id), func(up domain.UserPostRead) interface{} { return up }))
}
