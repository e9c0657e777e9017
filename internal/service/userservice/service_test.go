package userservice_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/service/userservice"
)

// MockUserRepository é uma implementação mock da interface UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.User], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Page[domain.User]), args.Error(1)
}

// MockTokenIssuer é uma implementação mock da interface TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(user domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func newService() (*userservice.Service, *MockUserRepository, *MockTokenIssuer) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := userservice.NewService(repo, tokens, logger.NewNopLogger()).WithBcryptCost(bcrypt.MinCost)
	return svc, repo, tokens
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// --- Create ---

func TestCreate_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc, repo, _ := newService()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleUser &&
			u.PasswordHash != "s3nha" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3nha")) == nil
	})).Return(domain.User{ID: 1, Name: "Ana", Email: "ana@x.com", Role: domain.RoleUser, CreatedAt: time.Now()}, nil)

	res := svc.Create(context.Background(), domain.UserRequest{Name: " Ana ", Email: "ana@x.com", Password: "s3nha"})

	require.True(t, res.IsSuccess())
	assert.Equal(t, http.StatusCreated, res.StatusCode())
	assert.Equal(t, int64(1), res.Value().ID)
	repo.AssertExpectations(t)
}

func TestCreate_IgnoresRequestedRole(t *testing.T) {
	for _, role := range []string{"ADMIN", "admin", domain.RoleOperator} {
		svc, repo, _ := newService()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool { return u.Role == domain.RoleUser })).
			Return(domain.User{ID: 2, Role: domain.RoleUser}, nil)

		res := svc.Create(context.Background(), domain.UserRequest{Name: "Eva", Email: "eva@x.com", Password: "s3nha", Role: role})

		require.True(t, res.IsSuccess(), role)
		assert.Equal(t, domain.RoleUser, res.Value().Role)
		repo.AssertExpectations(t)
	}
}

func TestCreate_MultibytePasswordOverBcryptLimit(t *testing.T) {
	svc, repo, _ := newService()

	res := svc.Create(context.Background(), domain.UserRequest{Name: "Ana", Email: "ana@x.com", Password: strings.Repeat("é", 40)})

	require.False(t, res.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	assert.Contains(t, res.Message(), "'senha'")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InvalidPayload(t *testing.T) {
	svc, repo, _ := newService()

	res := svc.Create(context.Background(), domain.UserRequest{Email: "invalido"})

	assert.False(t, res.IsSuccess())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	assert.IsType(t, &apperror.ValidationError{}, res.Err())
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newService()
	dup := apperror.NewDBError("Falha ao inserir usuário", &pq.Error{Code: "23505"})
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, dup)

	res := svc.Create(context.Background(), domain.UserRequest{Name: "Ana", Email: "ana@x.com", Password: "s3nha"})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	assert.Equal(t, "Já existe um usuário cadastrado com este e-mail", res.Message())
}

func TestCreate_RepoErrorIsBadRequestWithGenericMessage(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, errors.New("connection refused"))

	res := svc.Create(context.Background(), domain.UserRequest{Name: "Ana", Email: "ana@x.com", Password: "s3nha"})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	assert.Equal(t, "Não foi possível salvar o usuário", res.Message())
}

// --- Leitura ---

func TestGetByID(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("FindByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Ana"}, nil)
	repo.On("FindByID", mock.Anything, int64(2)).Return((*domain.User)(nil), nil)
	repo.On("FindByID", mock.Anything, int64(3)).Return((*domain.User)(nil), errors.New("timeout"))

	ok := svc.GetByID(context.Background(), 1)
	assert.Equal(t, http.StatusOK, ok.StatusCode())
	assert.Equal(t, "Ana", ok.Value().Name)

	missing := svc.GetByID(context.Background(), 2)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode())
	assert.Equal(t, "Usuário não encontrado", missing.Message())

	broken := svc.GetByID(context.Background(), 3)
	assert.Equal(t, http.StatusInternalServerError, broken.StatusCode())
	assert.NotContains(t, broken.Message(), "timeout")
}

func TestList_EmptyIsNoContent(t *testing.T) {
	svc, repo, _ := newService()
	req := domain.NewPageRequest(1, 10)
	repo.On("List", mock.Anything, req).Return(domain.NewPage[domain.User](req, 0, nil), nil)

	res := svc.List(context.Background(), req)

	assert.Equal(t, http.StatusNoContent, res.StatusCode())
	assert.Equal(t, "Não há usuários cadastrados", res.Message())
}

// --- Update / Delete ---

func TestUpdate_NotFound(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u domain.User) bool { return u.ID == 9 })).
		Return((*domain.User)(nil), nil)

	res := svc.Update(context.Background(), 9, domain.UserRequest{Name: "Ana", Email: "ana@x.com", Password: "nova", Role: "admin"})

	assert.Equal(t, http.StatusNotFound, res.StatusCode())
}

func TestUpdate_NormalizesRole(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u domain.User) bool { return u.Role == domain.RoleAdmin })).
		Return(&domain.User{ID: 9, Role: domain.RoleAdmin}, nil)

	res := svc.Update(context.Background(), 9, domain.UserRequest{Name: "Ana", Email: "ana@x.com", Password: "nova", Role: "admin"})

	assert.Equal(t, http.StatusOK, res.StatusCode())
	repo.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	svc, repo, _ := newService()
	repo.On("Delete", mock.Anything, int64(4)).Return(&domain.User{ID: 4}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return((*domain.User)(nil), nil)

	assert.Equal(t, http.StatusOK, svc.Delete(context.Background(), 4).StatusCode())
	assert.Equal(t, http.StatusNotFound, svc.Delete(context.Background(), 5).StatusCode())
}

// --- Authenticate ---

func TestAuthenticate_Success(t *testing.T) {
	svc, repo, tokens := newService()
	user := &domain.User{ID: 1, Name: "Ana", Email: "ana@x.com", Role: domain.RoleAdmin, PasswordHash: hashed(t, "s3nha")}
	repo.On("FindByEmail", mock.Anything, "ana@x.com").Return(user, nil)
	tokens.On("GenerateToken", *user).Return("jwt-token", nil)

	res := svc.Authenticate(context.Background(), domain.LoginRequest{Email: "ana@x.com", Password: "s3nha"})

	require.True(t, res.IsSuccess())
	assert.Equal(t, domain.LoginResult{User: "Ana", Email: "ana@x.com", Role: domain.RoleAdmin, Token: "jwt-token"}, res.Value())
}

func TestAuthenticate_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	svc, repo, tokens := newService()
	repo.On("FindByEmail", mock.Anything, "ana@x.com").
		Return(&domain.User{ID: 1, PasswordHash: hashed(t, "certa")}, nil)
	repo.On("FindByEmail", mock.Anything, "ninguem@x.com").Return((*domain.User)(nil), nil)

	wrong := svc.Authenticate(context.Background(), domain.LoginRequest{Email: "ana@x.com", Password: "errada"})
	unknown := svc.Authenticate(context.Background(), domain.LoginRequest{Email: "ninguem@x.com", Password: "errada"})

	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode())
	assert.Equal(t, "Usuário ou senha inválidos", wrong.Message())
	assert.Equal(t, wrong.Message(), unknown.Message())
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	svc, repo, _ := newService()

	res := svc.Authenticate(context.Background(), domain.LoginRequest{})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode())
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
