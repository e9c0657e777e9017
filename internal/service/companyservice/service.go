package companyservice

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
	msgListEmpty    = "Não há empresas cadastradas"
	msgAreaEmpty    = "Não há empresas cadastradas na área '%s'"
	msgHiringEmpty  = "Não há empresas contratando no momento"
	msgNotFound     = "Empresa não encontrada"
	msgReadFailed   = "Ocorreu um erro ao obter as empresas"
	msgCreateFailed = "Não foi possível salvar a empresa"
	msgUpdateFailed = "Não foi possível atualizar a empresa"
	msgDeleteFailed = "Não foi possível excluir a empresa"
	msgAreaRequired = "Informe a área para a busca"
)

// CompanyRepository define o contrato que este Serviço espera da camada de Persistência.
type CompanyRepository interface {
	Create(ctx context.Context, c domain.Company) (domain.Company, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	Update(ctx context.Context, c domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context, filter domain.CompanyFilter, req domain.PageRequest) (domain.Page[domain.Company], error)
}

// Service implementa os casos de uso de empresas.
type Service struct {
	repo   CompanyRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Empresa.
func NewService(repo CompanyRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// List pagina todas as empresas.
func (s *Service) List(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.Company]] {
	return s.list(ctx, domain.CompanyFilter{}, req, msgListEmpty)
}

// ListByArea pagina as empresas cuja área contém o texto informado.
func (s *Service) ListByArea(ctx context.Context, area string, req domain.PageRequest) domain.Result[domain.Page[domain.Company]] {
	area = strings.TrimSpace(area)
	if area == "" {
		return domain.Failure[domain.Page[domain.Company]](apperror.NewValidationError(msgAreaRequired))
	}
	return s.list(ctx, domain.CompanyFilter{Area: area}, req, fmt.Sprintf(msgAreaEmpty, area))
}

// ListHiring pagina as empresas com contratação aberta.
func (s *Service) ListHiring(ctx context.Context, req domain.PageRequest) domain.Result[domain.Page[domain.Company]] {
	return s.list(ctx, domain.CompanyFilter{HiringOnly: true}, req, msgHiringEmpty)
}

func (s *Service) list(ctx context.Context, filter domain.CompanyFilter, req domain.PageRequest, emptyMsg string) domain.Result[domain.Page[domain.Company]] {
	page, err := s.repo.List(ctx, filter, req)
	if err != nil {
		s.logger.Error("Falha ao listar empresas", err)
		return domain.Failure[domain.Page[domain.Company]](apperror.NewInternalError(msgReadFailed, err))
	}
	if page.IsEmpty() {
		return domain.Failure[domain.Page[domain.Company]](apperror.NewNoContentError(emptyMsg))
	}
	return domain.Success(page, http.StatusOK)
}

// GetByID busca uma empresa.
func (s *Service) GetByID(ctx context.Context, id int64) domain.Result[domain.Company] {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar empresa", err)
		return domain.Failure[domain.Company](apperror.NewInternalError(msgReadFailed, err))
	}
	if c == nil {
		return domain.Failure[domain.Company](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*c, http.StatusOK)
}

// Create valida e persiste uma empresa. contratandoAgora vazio vira "N".
func (s *Service) Create(ctx context.Context, req domain.CompanyRequest) domain.Result[domain.Company] {
	c, failure := build(req)
	if failure != nil {
		return domain.Failure[domain.Company](failure)
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Error("Falha ao criar empresa", err)
		return domain.Failure[domain.Company](apperror.NewBadRequestError(msgCreateFailed, err))
	}
	s.logger.Info("Empresa criada", map[string]interface{}{"company_id": created.ID})
	return domain.Success(created, http.StatusCreated)
}

// Update substitui os dados da empresa.
func (s *Service) Update(ctx context.Context, id int64, req domain.CompanyRequest) domain.Result[domain.Company] {
	c, failure := build(req)
	if failure != nil {
		return domain.Failure[domain.Company](failure)
	}
	c.ID = id

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		s.logger.Error("Falha ao atualizar empresa", err)
		return domain.Failure[domain.Company](apperror.NewBadRequestError(msgUpdateFailed, err))
	}
	if updated == nil {
		return domain.Failure[domain.Company](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*updated, http.StatusOK)
}

// Delete remove a empresa e devolve o registro removido.
func (s *Service) Delete(ctx context.Context, id int64) domain.Result[domain.Company] {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao excluir empresa", err)
		return domain.Failure[domain.Company](apperror.NewBadRequestError(msgDeleteFailed, err))
	}
	if deleted == nil {
		return domain.Failure[domain.Company](apperror.NewNotFoundError(msgNotFound))
	}
	return domain.Success(*deleted, http.StatusOK)
}

func build(req domain.CompanyRequest) (domain.Company, apperror.AppError) {
	req.Name = strings.TrimSpace(req.Name)
	req.HiringNow = strings.ToUpper(strings.TrimSpace(req.HiringNow))
	if err := validation.Struct(req); err != nil {
		return domain.Company{}, err
	}
	if req.HiringNow == "" {
		req.HiringNow = domain.HiringNo
	}
	return domain.Company{
		Name:        req.Name,
		Description: req.Description,
		Area:        req.Area,
		HiringNow:   req.HiringNow,
		LogoURL:     req.LogoURL,
		Website:     req.Website,
	}, nil
}
