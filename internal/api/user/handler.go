package user

import (
	"context"
	"net/http"

	"remoteready/internal/api/hateoas"
	"remoteready/internal/domain"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/responder"
)

const basePath = "/api/v1/usuario"

// UserService define o contrato dos casos de uso de usuário usados pelo Handler.
type UserService interface {
	List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.User]]
	GetByID(ctx context.Context, id int64) domain.Result[domain.User]
	Create(ctx context.Context, req domain.UserRequest) domain.Result[domain.User]
	Update(ctx context.Context, id int64, req domain.UserRequest) domain.Result[domain.User]
	Delete(ctx context.Context, id int64) domain.Result[domain.User]
	Authenticate(ctx context.Context, req domain.LoginRequest) domain.Result[domain.LoginResult]
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
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
		h.Logger.Error("Falha ao escrever resposta de usuário", err)
	}
}

// Authenticate lida com POST /api/v1/usuario/autenticar.
// @Summary Autentica um usuário
// @Description Realiza a autenticação do usuário e retorna um token JWT.
// @Tags usuario
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Email e senha"
// @Success 200 {object} domain.LoginResult "Autenticação realizada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /usuario/autenticar [post]
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Authenticate(r.Context(), req), func(v domain.LoginResult) interface{} {
		return v
	}))
}

// List lida com GET /api/v1/usuario.
// @Summary Lista usuários
// @Description Retorna a lista paginada de usuários cadastrados.
// @Tags usuario
// @Produce json
// @Security BearerAuth
// @Param PaginaAtual query int false "Página (padrão 1)"
// @Param LimitePagina query int false "Itens por página (padrão 10)"
// @Success 200 {object} hateoas.Collection[domain.User]
// @Success 204 "Não há usuários cadastrados"
// @Failure 400 {object} domain.ErrorResponse "Parâmetros de paginação inválidos"
// @Failure 401 {object} domain.ErrorResponse
// @Router /usuario [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, perr := hateoas.PageRequest(r)
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.List(r.Context(), req), func(p domain.Page[domain.User]) interface{} {
		links := b.PageLinks(basePath, p.CurrentPage, p.TotalPages, p.PageSize).
			Merge(hateoas.Links{"create": b.URL(basePath, nil)})
		return hateoas.NewCollection(p, links, func(u domain.User) hateoas.Links { return itemLinks(b, u.ID) })
	}))
}

// GetByID lida com GET /api/v1/usuario/{id}.
// @Summary Obtém usuário por ID
// @Tags usuario
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} hateoas.Resource[domain.User]
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /usuario/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.GetByID(r.Context(), id), func(u domain.User) interface{} {
		links := itemLinks(b, u.ID).Merge(hateoas.Links{"getAll": b.URL(basePath, nil)})
		return hateoas.Resource[domain.User]{Data: u, Links: links}
	}))
}

// Create lida com POST /api/v1/usuario.
// @Summary Cadastra um novo usuário
// @Description Cria o usuário com a senha protegida por bcrypt. Não exige autenticação; o perfil é sempre USER.
// @Tags usuario
// @Accept json
// @Produce json
// @Param usuario body domain.UserRequest true "Dados do usuário"
// @Success 201 {object} hateoas.Resource[domain.User]
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou e-mail já cadastrado"
// @Router /usuario [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.UserRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	b := hateoas.NewBuilder(r)
	h.logWrite(hateoas.Write(w, h.Service.Create(r.Context(), req), func(u domain.User) interface{} {
		links := itemLinks(b, u.ID).Merge(hateoas.Links{"login": b.URL(basePath+"/autenticar", nil)})
		return hateoas.Resource[domain.User]{Data: u, Links: links}
	}))
}

// Update lida com PUT /api/v1/usuario/{id}.
// @Summary Atualiza um usuário
// @Tags usuario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param usuario body domain.UserRequest true "Dados do usuário"
// @Success 200 {object} domain.User
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse "Apenas ADMIN"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /usuario/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}
	var req domain.UserRequest
	if err := responder.Decode(w, r, &req); err != nil {
		responder.Error(w, err)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Update(r.Context(), id, req), func(u domain.User) interface{} { return u }))
}

// Delete lida com DELETE /api/v1/usuario/{id}.
// @Summary Remove um usuário
// @Tags usuario
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} domain.User
// @Failure 403 {object} domain.ErrorResponse "Apenas ADMIN"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /usuario/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := hateoas.PathID(r, "id")
	if perr != nil {
		responder.Error(w, perr)
		return
	}

	h.logWrite(hateoas.Write(w, h.Service.Delete(r.Context(), id), func(u domain.User) interface{} { return u }))
}
