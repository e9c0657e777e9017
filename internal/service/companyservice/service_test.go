package companyservice_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"remoteready/internal/domain"
	"remoteready/internal/pkg/logger"
	"remoteready/internal/service/companyservice"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, c domain.Company) (domain.Company, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c domain.Company) (*domain.Company, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context, filter domain.CompanyFilter, req domain.PageRequest) (domain.Page[domain.Company], error) {
	args := m.Called(ctx, filter, req)
	return args.Get(0).(domain.Page[domain.Company]), args.Error(1)
}

func newService() (*companyservice.Service, *MockCompanyRepository) {
	repo := new(MockCompanyRepository)
	return companyservice.NewService(repo, logger.NewNopLogger()), repo
}

func TestCreate_DefaultsHiringToNo(t *testing.T) {
	svc, repo := newService()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Remote Inc" && c.HiringNow == domain.HiringNo
	})).Return(domain.Company{ID: 7, Name: "Remote Inc", HiringNow: domain.HiringNo}, nil)

	res := svc.Create(context.Background(), domain.CompanyRequest{Name: "  Remote Inc "})

	require.True(t, res.IsSuccess())
	assert.Equal(t, http.StatusCreated, res.StatusCode())
	assert.Equal(t, int64(7), res.Value().ID)
	repo.AssertExpectations(t)
}

func TestCreate_RejectsInvalidHiringFlag(t *testing.T) {
	svc, repo := newService()

	res := svc.Create(context.Background(), domain.CompanyRequest{Name: "Remote Inc", HiringNow: "talvez"})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	assert.Contains(t, res.Message(), "contratandoAgora")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_LowercaseFlagIsAccepted(t *testing.T) {
	svc, repo := newService()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c domain.Company) bool { return c.HiringNow == domain.HiringYes })).
		Return(domain.Company{ID: 1}, nil)

	res := svc.Create(context.Background(), domain.CompanyRequest{Name: "Remote Inc", HiringNow: "y"})

	assert.True(t, res.IsSuccess())
}

func TestCreate_RepoErrorHidesCause(t *testing.T) {
	svc, repo := newService()
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.Company{}, errors.New("pq: value too long"))

	res := svc.Create(context.Background(), domain.CompanyRequest{Name: "Remote Inc"})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	assert.Equal(t, "Não foi possível salvar a empresa", res.Message())
}

func TestListVariants_EmptyMessages(t *testing.T) {
	req := domain.NewPageRequest(1, 10)
	empty := domain.NewPage[domain.Company](req, 0, nil)

	tests := []struct {
		name string
		call func(*companyservice.Service) domain.Result[domain.Page[domain.Company]]
		flt  domain.CompanyFilter
		msg  string
	}{
		{
			name: "todas",
			call: func(s *companyservice.Service) domain.Result[domain.Page[domain.Company]] { return s.List(context.Background(), req) },
			msg:  "Não há empresas cadastradas",
		},
		{
			name: "por área",
			call: func(s *companyservice.Service) domain.Result[domain.Page[domain.Company]] {
				return s.ListByArea(context.Background(), " dados ", req)
			},
			flt: domain.CompanyFilter{Area: "dados"},
			msg: "Não há empresas cadastradas na área 'dados'",
		},
		{
			name: "contratando",
			call: func(s *companyservice.Service) domain.Result[domain.Page[domain.Company]] {
				return s.ListHiring(context.Background(), req)
			},
			flt: domain.CompanyFilter{HiringOnly: true},
			msg: "Não há empresas contratando no momento",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()
			repo.On("List", mock.Anything, tt.flt, req).Return(empty, nil)

			res := tt.call(svc)

			assert.Equal(t, http.StatusNoContent, res.StatusCode())
			assert.Equal(t, tt.msg, res.Message())
			repo.AssertExpectations(t)
		})
	}
}

func TestListByArea_BlankArea(t *testing.T) {
	svc, repo := newService()

	res := svc.ListByArea(context.Background(), "  ", domain.NewPageRequest(1, 10))

	assert.Equal(t, http.StatusBadRequest, res.StatusCode())
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestList_ReadFailureIsInternal(t *testing.T) {
	svc, repo := newService()
	req := domain.NewPageRequest(2, 5)
	repo.On("List", mock.Anything, domain.CompanyFilter{}, req).Return(domain.Page[domain.Company]{}, errors.New("boom"))

	res := svc.List(context.Background(), req)

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode())
	assert.Equal(t, "Ocorreu um erro ao obter as empresas", res.Message())
}

func TestGetUpdateDelete_NotFound(t *testing.T) {
	svc, repo := newService()
	repo.On("FindByID", mock.Anything, int64(3)).Return((*domain.Company)(nil), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return((*domain.Company)(nil), nil)
	repo.On("Delete", mock.Anything, int64(3)).Return((*domain.Company)(nil), nil)

	assert.Equal(t, http.StatusNotFound, svc.GetByID(context.Background(), 3).StatusCode())
	assert.Equal(t, http.StatusNotFound, svc.Update(context.Background(), 3, domain.CompanyRequest{Name: "X"}).StatusCode())
	assert.Equal(t, http.StatusNotFound, svc.Delete(context.Background(), 3).StatusCode())
}

func TestUpdate_SetsID(t *testing.T) {
	svc, repo := newService()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c domain.Company) bool { return c.ID == 12 })).
		Return(&domain.Company{ID: 12, Name: "Nova"}, nil)

	res := svc.Update(context.Background(), 12, domain.CompanyRequest{Name: "Nova", HiringNow: "Y"})

	require.True(t, res.IsSuccess())
	assert.Equal(t, "Nova", res.Value().Name)
}
