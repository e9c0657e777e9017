package userservice

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/validation"
)

// Mensagens expostas ao cliente.
const (
	msgListEmpty       = "Não há usuários cadastrados"
	msgNotFound        = "Usuário não encontrado"
	msgInvalidLogin    = "Usuário ou senha inválidos"
	msgEmailInUse      = "Já existe um usuário cadastrado com este e-mail"
	msgReadFailed      = "Ocorreu um erro ao obter os usuários"
	msgCreateFailed    = "Não foi possível salvar o usuário"
	msgUpdateFailed    = "Não foi possível atualizar o usuário"
	msgDeleteFailed    = "Não foi possível excluir o usuário"
	msgAuthFailed      = "Ocorreu um erro ao autenticar o usuário"
	msgPasswordFailure = "Não foi possível processar a senha"
)

// UserRepository define o contrato que este Serviço espera da camada de Persistência.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.User], error)
}

// TokenIssuer emite o JWT de um usuário autenticado.
type TokenIssuer interface {
	GenerateToken(user domain.User) (string, error)
}

// Service implementa os casos de uso de usuário e autenticação.
type Service struct {
	repo       UserRepository
	tokens     TokenIssuer
	logger     logger.Logger
	bcryptCost int
}

// NewService cria e retorna uma nova instância do Serviço de Usuário.
func NewService(repo UserRepository, tokens TokenIssuer, log logger.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, logger: log, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta o custo do bcrypt (testes usam bcrypt.MinCost).
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

// List pagina os usuários. Página vazia vira NoContent.
func (s *Service) List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.User]] {
	page, err := s.repo.List(ctx, req)
	if err != nil {
		s.logger.Error("Falha ao listar usuários", err)
		return domain.Failure[domain.Page[domain.User]](apperror.NewInternalError(msgReadFailed, err))
	}
	if page.IsEmpty() {
		return domain.Failure[domain.Page[domain.User]](apperror.NewNoContentError(msgListEmpty))
	}
	return domain.Success(page, http.StatusOK)
}

// GetByID busca um usuário.
func (s *Service) GetByID(ctx context.Context, id int64) domain.Result[domain.User] {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar usuário", err)
		return domain.Failure[domain.User](apperror.NewInternalError(msgReadFailed, err))
	}
	if user == nil {
		return domain.Failure[domain.User](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*user, http.StatusOK)
}

// Create valida o payload, gera o hash da senha e persiste o usuário.
// O cadastro é anônimo: todo usuário nasce USER e só o PUT de um ADMIN altera o perfil.
func (s *Service) Create(ctx context.Context, req domain.UserRequest) domain.Result[domain.User] {
	req.Role = domain.RoleUser
	user, failure := s.buildUser(req)
	if failure != nil {
		return domain.Failure[domain.User](failure)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.Failure[domain.User](s.writeError("Falha ao criar usuário", msgCreateFailed, err))
	}

	s.logger.Info("Usuário criado", map[string]interface{}{"user_id": created.ID, "role": created.Role})
	return domain.Success(created, http.StatusCreated)
}

// Update substitui os dados do usuário.
func (s *Service) Update(ctx context.Context, id int64, req domain.UserRequest) domain.Result[domain.User] {
	user, failure := s.buildUser(req)
	if failure != nil {
		return domain.Failure[domain.User](failure)
	}
	user.ID = id

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.Failure[domain.User](s.writeError("Falha ao atualizar usuário", msgUpdateFailed, err))
	}
	if updated == nil {
		return domain.Failure[domain.User](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*updated, http.StatusOK)
}

// Delete remove o usuário e devolve o registro removido.
func (s *Service) Delete(ctx context.Context, id int64) domain.Result[domain.User] {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Failure[domain.User](s.writeError("Falha ao excluir usuário", msgDeleteFailed, err))
	}
	if deleted == nil {
		return domain.Failure[domain.User](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*deleted, http.StatusOK)
}

// Authenticate confere email e senha e emite o token.
// Email inexistente e senha errada produzem a mesma resposta.
func (s *Service) Authenticate(ctx context.Context, req domain.LoginRequest) domain.Result[domain.LoginResult] {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return domain.Failure[domain.LoginResult](apperror.NewUnauthorizedError(msgInvalidLogin))
	}

	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.logger.Error("Falha ao buscar usuário para autenticação", err)
		return domain.Failure[domain.LoginResult](apperror.NewInternalError(msgAuthFailed, err))
	}
	if user == nil {
		return domain.Failure[domain.LoginResult](apperror.NewUnauthorizedError(msgInvalidLogin))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Debug("Senha inválida na autenticação", map[string]interface{}{"user_id": user.ID})
		return domain.Failure[domain.LoginResult](apperror.NewUnauthorizedError(msgInvalidLogin))
	}

	tok, err := s.tokens.GenerateToken(*user)
	if err != nil {
		s.logger.Error("Falha ao gerar token", err)
		return domain.Failure[domain.LoginResult](apperror.NewInternalError(msgAuthFailed, err))
	}

	return domain.Success(domain.LoginResult{
		User:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: tok,
	}, http.StatusOK)
}

func (s *Service) buildUser(req domain.UserRequest) (domain.User, apperror.AppError) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.ToUpper(strings.TrimSpace(req.Role))

	if err := validation.Struct(req); err != nil {
		return domain.User{}, err
	}
	if req.Role == "" {
		req.Role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha", err)
		return domain.User{}, apperror.NewBadRequestError(msgPasswordFailure, err)
	}

	return domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}, nil
}

// writeError traduz falhas de escrita em 400 com mensagem genérica, registrando a causa.
func (s *Service) writeError(logMsg, clientMsg string, err error) apperror.AppError {
	if apperror.IsUniqueViolation(err) {
		return apperror.NewBadRequestError(msgEmailInUse, err)
	}
	s.logger.Error(logMsg, err)
	return apperror.NewBadRequestError(clientMsg, err)
}
