package userpostservice

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/validation"
	"remoteready/internal/repository/userpostrepo"
)

const (
	msgListEmpty       = "Não há registros cadastrados"
	msgUserListEmpty   = "Este usuário ainda não leu nenhum post"
	msgNotFound        = "Registro não encontrado"
	msgAlreadyRead     = "Este post já foi marcado como lido"
	msgUnknownRef      = "Usuário ou post inexistente"
	msgInvalidIDs      = "Informe idUsuario e idPost válidos"
	msgReadFailed      = "Ocorreu um erro ao obter os registros"
	msgGetFailed       = "Ocorreu um erro ao obter o registro"
	msgUserReadFailed  = "Ocorreu um erro ao obter os posts lidos"
	msgProgressFailed  = "Ocorreu um erro ao obter o progresso do usuário"
	msgEligibleFailed  = "Ocorreu um erro ao verificar elegibilidade"
	msgMarkFailed      = "Não foi possível marcar o post como lido"
	msgUpdateFailed    = "Não foi possível editar o registro"
	msgDeleteFailed    = "Não foi possível deletar o registro"
)

// UserPostRepository define o contrato que este Serviço espera da camada de Persistência.
type UserPostRepository interface {
	MarkRead(ctx context.Context, userID, postID int64, status string) (domain.UserPostRead, error)
	FindByID(ctx context.Context, id int64) (*domain.UserPostRead, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.UserPostRead, error)
	Delete(ctx context.Context, id int64) (*domain.UserPostRead, error)
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.UserPostRead], error)
	ListByUser(ctx context.Context, userID int64, req domain.PageRequest) (domain.Page[domain.UserPostRead], error)
	CountRead(ctx context.Context, userID int64) (int, error)
}

// Service implementa o acompanhamento de leitura e a regra do certificado.
type Service struct {
	repo   UserPostRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de leituras.
func NewService(repo UserPostRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// MarkAsRead registra a leitura do post com status LIDO.
// Um segundo registro para o mesmo par (usuário, post) é rejeitado, inclusive sob concorrência.
func (s *Service) MarkAsRead(ctx context.Context, userID, postID int64) domain.Result[domain.UserPostRead] {
	if userID <= 0 || postID <= 0 {
		return domain.Failure[domain.UserPostRead](apperror.NewValidationError(msgInvalidIDs))
	}

	read, err := s.repo.MarkRead(ctx, userID, postID, domain.StatusRead)
	switch {
	case errors.Is(err, userpostrepo.ErrAlreadyRead):
		return domain.Failure[domain.UserPostRead](apperror.NewBadRequestError(msgAlreadyRead, err))
	case apperror.IsForeignKeyViolation(err):
		return domain.Failure[domain.UserPostRead](apperror.NewBadRequestError(msgUnknownRef, err))
	case err != nil:
		s.logger.Error("Falha ao marcar post como lido", err)
		return domain.Failure[domain.UserPostRead](apperror.NewBadRequestError(msgMarkFailed, err))
	}

	s.logger.Info("Post marcado como lido", map[string]interface{}{"user_id": userID, "post_id": postID})
	return domain.Success(read, http.StatusCreated)
}

// List pagina todas as leituras.
func (s *Service) List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.UserPostRead]] {
	page, err := s.repo.List(ctx, req)
	if err != nil {
		s.logger.Error("Falha ao listar leituras", err)
		return domain.Failure[domain.Page[domain.UserPostRead]](apperror.NewInternalError(msgReadFailed, err))
	}
	if page.IsEmpty() {
		return domain.Failure[domain.Page[domain.UserPostRead]](apperror.NewNoContentError(msgListEmpty))
	}
	return domain.Success(page, http.StatusOK)
}

// ListByUser pagina as leituras de um usuário.
func (s *Service) ListByUser(ctx context.Context, userID int64, req domain.PageRequest) domain.Result[domain.Page[domain.UserPostRead]] {
	page, err := s.repo.ListByUser(ctx, userID, req)
	if err != nil {
		s.logger.Error("Falha ao listar leituras do usuário", err)
		return domain.Failure[domain.Page[domain.UserPostRead]](apperror.NewInternalError(msgUserReadFailed, err))
	}
	if page.IsEmpty() {
		return domain.Failure[domain.Page[domain.UserPostRead]](apperror.NewNoContentError(msgUserListEmpty))
	}
	return domain.Success(page, http.StatusOK)
}

func (s *Service) GetByID(ctx context.Context, id int64) domain.Result[domain.UserPostRead] {
	read, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar leitura", err)
		return domain.Failure[domain.UserPostRead](apperror.NewInternalError(msgGetFailed, err))
	}
	if read == nil {
		return domain.Failure[domain.UserPostRead](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*read, http.StatusOK)
}

// Progress calcula quantos posts faltam para o certificado.
// Usuário sem leituras (ou inexistente) recebe progresso zero.
func (s *Service) Progress(ctx context.Context, userID int64) domain.Result[domain.ProgressReport] {
	n, err := s.repo.CountRead(ctx, userID)
	if err != nil {
		s.logger.Error("Falha ao contar leituras", err)
		return domain.Failure[domain.ProgressReport](apperror.NewInternalError(msgProgressFailed, err))
	}
	return domain.Success(domain.NewProgressReport(userID, n), http.StatusOK)
}

// CertificateEligibility informa se o usuário já atingiu o mínimo de leituras.
func (s *Service) CertificateEligibility(ctx context.Context, userID int64) domain.Result[domain.CertificateStatus] {
	n, err := s.repo.CountRead(ctx, userID)
	if err != nil {
		s.logger.Error("Falha ao verificar elegibilidade", err)
		return domain.Failure[domain.CertificateStatus](apperror.NewInternalError(msgEligibleFailed, err))
	}
	return domain.Success(domain.NewCertificateStatus(userID, n), http.StatusOK)
}

// UpdateStatus altera apenas o status da leitura.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req domain.UserPostStatusRequest) domain.Result[domain.UserPostRead] {
	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	if err := validation.Struct(req); err != nil {
		return domain.Failure[domain.UserPostRead](err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		s.logger.Error("Falha ao atualizar leitura", err)
		return domain.Failure[domain.UserPostRead](apperror.NewBadRequestError(msgUpdateFailed, err))
	}
	if updated == nil {
		return domain.Failure[domain.UserPostRead](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*updated, http.StatusOK)
}

func (s *Service) Delete(ctx context.Context, id int64) domain.Result[domain.UserPostRead] {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao excluir leitura", err)
		return domain.Failure[domain.UserPostRead](apperror.NewBadRequestError(msgDeleteFailed, err))
	}
	if deleted == nil {
		return domain.Failure[domain.UserPostRead](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*deleted, http.StatusOK)
}
