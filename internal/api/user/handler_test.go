package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"remoteready/internal/api/user"
	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/service/userservice"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.User]] {
	return m.Called(ctx, req).Get(0).(domain.Result[domain.Page[domain.User]])
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) domain.Result[domain.User] {
	return m.Called(ctx, id).Get(0).(domain.Result[domain.User])
}

func (m *MockUserService) Create(ctx context.Context, req domain.UserRequest) domain.Result[domain.User] {
	return m.Called(ctx, req).Get(0).(domain.Result[domain.User])
}

func (m *MockUserService) Update(ctx context.Context, id int64, req domain.UserRequest) domain.Result[domain.User] {
	return m.Called(ctx, id, req).Get(0).(domain.Result[domain.User])
}

func (m *MockUserService) Delete(ctx context.Context, id int64) domain.Result[domain.User] {
	return m.Called(ctx, id).Get(0).(domain.Result[domain.User])
}

func (m *MockUserService) Authenticate(ctx context.Context, req domain.LoginRequest) domain.Result[domain.LoginResult] {
	return m.Called(ctx, req).Get(0).(domain.Result[domain.LoginResult])
}

func newRouter(svc *MockUserService) http.Handler {
	h := user.NewHandler(svc, logger.NewNopLogger())
	r := chi.NewRouter()
	r.Post("/api/v1/usuario/autenticar", h.Authenticate)
	r.Get("/api/v1/usuario", h.List)
	r.Post("/api/v1/usuario", h.Create)
	r.Get("/api/v1/usuario/{id}", h.GetByID)
	r.Delete("/api/v1/usuario/{id}", h.Delete)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_ReturnsToken(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Authenticate", mock.Anything, domain.LoginRequest{Email: "ana@x.com", Password: "s3nha"}).
		Return(domain.Success(domain.LoginResult{User: "Ana", Email: "ana@x.com", Role: "USER", Token: "tok"}, http.StatusOK))

	rec := serve(newRouter(svc), http.MethodPost, "/api/v1/usuario/autenticar", `{"email":"ana@x.com","senha":"s3nha"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"user": "Ana", "email": "ana@x.com", "tipoUsuario": "USER", "token": "tok"}, body)
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Authenticate", mock.Anything, mock.Anything).
		Return(domain.Failure[domain.LoginResult](apperror.NewUnauthorizedError("Usuário ou senha inválidos")))

	rec := serve(newRouter(svc), http.MethodPost, "/api/v1/usuario/autenticar", `{"email":"a@x.com","senha":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Usuário ou senha inválidos", body.Message)
}

func TestCreate_MalformedJSON(t *testing.T) {
	svc := new(MockUserService)

	rec := serve(newRouter(svc), http.MethodPost, "/api/v1/usuario", `{"nome":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_EnvelopeHidesPasswordAndLinksLogin(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(domain.Success(domain.User{ID: 5, Name: "Ana", PasswordHash: "$2a$hash"}, http.StatusCreated))

	rec := serve(newRouter(svc), http.MethodPost, "/api/v1/usuario", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")
	var body struct {
		Data  map[string]interface{} `json:"data"`
		Links map[string]string      `json:"links"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(5), body.Data["id"])
	assert.Equal(t, "http://example.com/api/v1/usuario/5", body.Links["self"])
	assert.Equal(t, "http://example.com/api/v1/usuario/autenticar", body.Links["login"])
}

func TestList_NoContentHasNoBody(t *testing.T) {
	svc := new(MockUserService)
	svc.On("List", mock.Anything, domain.NewPageRequest(2, 5)).
		Return(domain.Failure[domain.Page[domain.User]](apperror.NewNoContentError("Não há usuários cadastrados")))

	rec := serve(newRouter(svc), http.MethodGet, "/api/v1/usuario?PaginaAtual=2&LimitePagina=5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestList_PaginationLinks(t *testing.T) {
	svc := new(MockUserService)
	req := domain.NewPageRequest(2, 1)
	page := domain.NewPage(req, 3, []domain.User{{ID: 2}})
	svc.On("List", mock.Anything, req).Return(domain.Success(page, http.StatusOK))

	rec := serve(newRouter(svc), http.MethodGet, "/api/v1/usuario?PaginaAtual=2&LimitePagina=1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Links map[string]*string `json:"links"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "http://example.com/api/v1/usuario?LimitePagina=1&PaginaAtual=1", *body.Links["prev"])
	assert.Equal(t, "http://example.com/api/v1/usuario?LimitePagina=1&PaginaAtual=3", *body.Links["next"])
	assert.Equal(t, "http://example.com/api/v1/usuario", *body.Links["create"])
}

func TestGetByID(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetByID", mock.Anything, int64(9)).
		Return(domain.Failure[domain.User](apperror.NewNotFoundError("Usuário não encontrado")))

	assert.Equal(t, http.StatusNotFound, serve(newRouter(svc), http.MethodGet, "/api/v1/usuario/9", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(newRouter(svc), http.MethodGet, "/api/v1/usuario/nove", "").Code)
}

func TestDelete_ReturnsEntity(t *testing.T) {
	svc := new(MockUserService)
	svc.On("Delete", mock.Anything, int64(3)).Return(domain.Success(domain.User{ID: 3, Name: "Ana"}, http.StatusOK))

	rec := serve(newRouter(svc), http.MethodDelete, "/api/v1/usuario/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ana", body.Name)
}

// recordingRepo guarda o último usuário persistido.
type recordingRepo struct {
	userservice.UserRepository
	saved domain.User
}

func (r *recordingRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	u.ID = 11
	r.saved = u
	return u, nil
}

func TestCreate_AnonymousSignUpCannotChooseAdmin(t *testing.T) {
	repo := &recordingRepo{}
	svc := userservice.NewService(repo, nil, logger.NewNopLogger()).WithBcryptCost(bcrypt.MinCost)
	h := user.NewHandler(svc, logger.NewNopLogger())
	r := chi.NewRouter()
	r.Post("/api/v1/usuario", h.Create)

	rec := serve(r, http.MethodPost, "/api/v1/usuario", `{"nome":"Eva","email":"eva@x.com","senha":"s3nha","role":"ADMIN"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.RoleUser, repo.saved.Role)
	var body struct {
		Data domain.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.RoleUser, body.Data.Role)
}
