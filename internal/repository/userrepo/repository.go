package userrepo

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

const table = "users"

var columns = []string{"id", "name", "email", "password_hash", "role", "created_at"}

// UserRepository persiste usuários no PostgreSQL.
type UserRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
}

// NewUserRepository cria e retorna uma nova instância do Repositório.
func NewUserRepository(db *sqlx.DB, dbTimeout time.Duration) *UserRepository {
	return &UserRepository{DB: db, DBTimeout: dbTimeout}
}

// Create insere o usuário e devolve-o com id e created_at preenchidos.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (created domain.User, err error) {
	defer database.Observe("users.create", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Insert(table).
		Columns("name", "email", "password_hash", "role").
		Values(user.Name, user.Email, user.PasswordHash, user.Role).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.User{}, apperror.NewDBError("Falha ao montar insert de usuário", err)
	}

	if err = r.DB.GetContext(ctx, &created, query, args...); err != nil {
		return domain.User{}, apperror.NewDBError("Falha ao inserir usuário", err)
	}
	return created, nil
}

// FindByID retorna nil quando o usuário não existe.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (_ *domain.User, err error) {
	defer database.Observe("users.find_by_id", time.Now(), &err)
	return r.findOne(ctx, sq.Eq{"id": id})
}

// FindByEmail busca sem diferenciar maiúsculas. Retorna nil quando não existe.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (_ *domain.User, err error) {
	defer database.Observe("users.find_by_email", time.Now(), &err)
	return r.findOne(ctx, sq.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Sqlizer) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Select(columns...).From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar consulta de usuário", err)
	}

	var user domain.User
	err = r.DB.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDBError("Falha ao buscar usuário no DB", err)
	}
	return &user, nil
}

// Update sobrescreve os campos mutáveis. Retorna nil quando o id não existe.
func (r *UserRepository) Update(ctx context.Context, user domain.User) (_ *domain.User, err error) {
	defer database.Observe("users.update", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Update(table).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("role", user.Role).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar update de usuário", err)
	}

	return r.returningOne(ctx, "Falha ao atualizar usuário", query, args)
}

// Delete remove o usuário e devolve a linha removida. Retorna nil quando o id não existe.
func (r *UserRepository) Delete(ctx context.Context, id int64) (_ *domain.User, err error) {
	defer database.Observe("users.delete", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar delete de usuário", err)
	}

	return r.returningOne(ctx, "Falha ao excluir usuário", query, args)
}

func (r *UserRepository) returningOne(ctx context.Context, msg, query string, args []interface{}) (*domain.User, error) {
	var user domain.User
	err := r.DB.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDBError(msg, err)
	}
	return &user, nil
}

// List pagina os usuários por id crescente.
func (r *UserRepository) List(ctx context.Context, req domain.PageRequest) (_ domain.Page[domain.User], err error) {
	defer database.Observe("users.list", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	page, err := database.FetchPage[domain.User](ctx, r.DB, database.ListQuery{
		From:    table,
		Columns: columns,
		OrderBy: []string{"id ASC"},
	}, req)
	if err != nil {
		return domain.Page[domain.User]{}, apperror.NewDBError("Falha ao listar usuários", err)
	}
	return page, nil
}
