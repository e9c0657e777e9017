package blogpostservice

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/pkg/validation"
)

const (
	msgListEmpty     = "Não há posts cadastrados"
	msgRecentEmpty   = "Não há posts recentes"
	msgTagEmpty      = "Não há posts com a tag '%s'"
	msgNotFound      = "Post não encontrado"
	msgReadFailed    = "Ocorreu um erro ao obter os posts"
	msgRecentFailed  = "Ocorreu um erro ao obter os posts recentes"
	msgCreateFailed  = "Não foi possível salvar o post"
	msgUpdateFailed  = "Não foi possível atualizar o post"
	msgDeleteFailed  = "Não foi possível excluir o post"
	msgTagIsRequired = "Informe a tag para a busca"
)

// BlogPostRepository define o contrato que este Serviço espera da camada de Persistência.
type BlogPostRepository interface {
	Create(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error)
	FindByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	Update(ctx context.Context, p domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id int64) (*domain.BlogPost, error)
	List(ctx context.Context, filter domain.BlogPostFilter, req domain.PageRequest) (domain.Page[domain.BlogPost], error)
}

type Service struct {
	repo   BlogPostRepository
	logger logger.Logger
}

func NewService(repo BlogPostRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// List pagina todos os posts, mais recentes primeiro.
func (s *Service) List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]] {
	return s.list(ctx, domain.BlogPostFilter{}, req, msgListEmpty, msgReadFailed)
}

// ListRecent usa a mesma consulta e ordenação da listagem geral.
func (s *Service) ListRecent(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]] {
	return s.list(ctx, domain.BlogPostFilter{}, req, msgRecentEmpty, msgRecentFailed)
}

// ListByTag pagina os posts cuja tag contém o texto informado.
func (s *Service) ListByTag(ctx context.Context, tag string, req domain.PageRequest) domain.Result[domain.Page[domain.BlogPost]] {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return domain.Failure[domain.Page[domain.BlogPost]](apperror.NewValidationError(msgTagIsRequired))
	}
	return s.list(ctx, domain.BlogPostFilter{Tag: tag}, req, fmt.Sprintf(msgTagEmpty, tag), msgReadFailed)
}

func (s *Service) list(ctx context.Context, filter domain.BlogPostFilter, req domain.PageRequest, emptyMsg, failMsg string) domain.Result[domain.Page[domain.BlogPost]] {
	page, err := s.repo.List(ctx, filter, req)
	if err != nil {
		s.logger.Error("Falha ao listar posts", err)
		return domain.Failure[domain.Page[domain.BlogPost]](apperror.NewInternalError(failMsg, err))
	}
	if page.IsEmpty() {
		return domain.Failure[domain.Page[domain.BlogPost]](apperror.NewNoContentError(emptyMsg))
	}
	return domain.Success(page, http.StatusOK)
}

func (s *Service) GetByID(ctx context.Context, id int64) domain.Result[domain.BlogPost] {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar post", err)
		return domain.Failure[domain.BlogPost](apperror.NewInternalError(msgReadFailed, err))
	}
	if p == nil {
		return domain.Failure[domain.BlogPost](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*p, http.StatusOK)
}

func (s *Service) Create(ctx context.Context, req domain.BlogPostRequest) domain.Result[domain.BlogPost] {
	p, failure := build(req)
	if failure != nil {
		return domain.Failure[domain.BlogPost](failure)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error("Falha ao criar post", err)
		return domain.Failure[domain.BlogPost](apperror.NewBadRequestError(msgCreateFailed, err))
	}
	s.logger.Info("Post criado", map[string]interface{}{"post_id": created.ID})
	return domain.Success(created, http.StatusCreated)
}

func (s *Service) Update(ctx context.Context, id int64, req domain.BlogPostRequest) domain.Result[domain.BlogPost] {
	p, failure := build(req)
	if failure != nil {
		return domain.Failure[domain.BlogPost](failure)
	}
	p.ID = id

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		s.logger.Error("Falha ao atualizar post", err)
		return domain.Failure[domain.BlogPost](apperror.NewBadRequestError(msgUpdateFailed, err))
	}
	if updated == nil {
		return domain.Failure[domain.BlogPost](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*updated, http.StatusOK)
}

// Delete remove o post. As leituras associadas caem em cascata.
func (s *Service) Delete(ctx context.Context, id int64) domain.Result[domain.BlogPost] {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao excluir post", err)
		return domain.Failure[domain.BlogPost](apperror.NewBadRequestError(msgDeleteFailed, err))
	}
	if deleted == nil {
		return domain.Failure[domain.BlogPost](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*deleted, http.StatusOK)
}

func build(req domain.BlogPostRequest) (domain.BlogPost, apperror.AppError) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validation.Struct(req); err != nil {
		return domain.BlogPost{}, err
	}
	return domain.BlogPost{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Tag:         req.Tag,
	}, nil
}
