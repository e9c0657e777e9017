package companyrepo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/database"
)

const table = "companies"

var columns = []string{"id", "name", "description", "area", "hiring_now", "logo_url", "website", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// CompanyRepository persiste empresas no PostgreSQL.
type CompanyRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
}

// NewCompanyRepository cria e retorna uma nova instância do Repositório.
func NewCompanyRepository(db *sqlx.DB, dbTimeout time.Duration) *CompanyRepository {
	return &CompanyRepository{DB: db, DBTimeout: dbTimeout}
}

// Create insere a empresa e devolve-a com id e created_at preenchidos.
func (r *CompanyRepository) Create(ctx context.Context, c domain.Company) (created domain.Company, err error) {
	defer database.Observe("companies.create", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Insert(table).
		Columns("name", "description", "area", "hiring_now", "logo_url", "website").
		Values(c.Name, c.Description, c.Area, c.HiringNow, c.LogoURL, c.Website).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Company{}, apperror.NewDBError("Falha ao montar insert de empresa", err)
	}

	if err = r.DB.GetContext(ctx, &created, query, args...); err != nil {
		return domain.Company{}, apperror.NewDBError("Falha ao inserir empresa", err)
	}
	return created, nil
}

// FindByID retorna nil quando a empresa não existe.
func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (_ *domain.Company, err error) {
	defer database.Observe("companies.find_by_id", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar consulta de empresa", err)
	}
	return r.one(ctx, "Falha ao buscar empresa no DB", query, args)
}

// Update sobrescreve os campos mutáveis. Retorna nil quando o id não existe.
func (r *CompanyRepository) Update(ctx context.Context, c domain.Company) (_ *domain.Company, err error) {
	defer database.Observe("companies.update", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Update(table).
		SetMap(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"area":        c.Area,
			"hiring_now":  c.HiringNow,
			"logo_url":    c.LogoURL,
			"website":     c.Website,
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar update de empresa", err)
	}
	return r.one(ctx, "Falha ao atualizar empresa", query, args)
}

// Delete remove a empresa e devolve a linha removida. Retorna nil quando o id não existe.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) (_ *domain.Company, err error) {
	defer database.Observe("companies.delete", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Delete(table).Where(sq.Eq{"id": id}).Suffix(returning).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar delete de empresa", err)
	}
	return r.one(ctx, "Falha ao excluir empresa", query, args)
}

func (r *CompanyRepository) one(ctx context.Context, msg, query string, args []interface{}) (*domain.Company, error) {
	var c domain.Company
	err := r.DB.GetContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDBError(msg, err)
	}
	return &c, nil
}

// List pagina as empresas por id crescente, aplicando o filtro de área e/ou contratação.
func (r *CompanyRepository) List(ctx context.Context, filter domain.CompanyFilter, req domain.PageRequest) (_ domain.Page[domain.Company], err error) {
	defer database.Observe("companies.list", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	page, err := database.FetchPage[domain.Company](ctx, r.DB, listQuery(filter), req)
	if err != nil {
		return domain.Page[domain.Company]{}, apperror.NewDBError("Falha ao listar empresas", err)
	}
	return page, nil
}

func listQuery(filter domain.CompanyFilter) database.ListQuery {
	where := sq.And{}
	if filter.Area != "" {
		where = append(where, database.ContainsInsensitive("area", filter.Area))
	}
	if filter.HiringOnly {
		where = append(where, sq.Eq{"hiring_now": domain.HiringYes})
	}

	q := database.ListQuery{
		From:    table,
		Columns: columns,
		OrderBy: []string{"id ASC"},
	}
	if len(where) > 0 {
		q.Where = where
	}
	return q
}
