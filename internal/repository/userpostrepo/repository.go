package userpostrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
	"remoteready/internal/pkg/database"
)

const table = "user_posts"

// ErrAlreadyRead indica que o par (usuário, post) já possui registro de leitura.
var ErrAlreadyRead = errors.New("post já marcado como lido por este usuário")

// Colunas básicas, usadas nas escritas com RETURNING.
const returning = "RETURNING id, user_id, post_id, status, read_at"

// Colunas da listagem com os resumos de usuário e post.
var joinedColumns = []string{
	"up.id", "up.user_id", "up.post_id", "up.status", "up.read_at",
	"u.name AS user_name", "u.email AS user_email",
	"p.title AS post_title", "p.tag AS post_tag",
}

var joins = []string{
	"JOIN users u ON u.id = up.user_id",
	"JOIN blog_posts p ON p.id = up.post_id",
}

// row é a projeção plana de user_posts (com os JOINs opcionais).
type row struct {
	ID        int64          `db:"id"`
	UserID    int64          `db:"user_id"`
	PostID    int64          `db:"post_id"`
	Status    string         `db:"status"`
	ReadAt    time.Time      `db:"read_at"`
	UserName  sql.NullString `db:"user_name"`
	UserEmail sql.NullString `db:"user_email"`
	PostTitle sql.NullString `db:"post_title"`
	PostTag   sql.NullString `db:"post_tag"`
}

func (r row) toDomain() domain.UserPostRead {
	out := domain.UserPostRead{
		ID:     r.ID,
		UserID: r.UserID,
		PostID: r.PostID,
		Status: r.Status,
		ReadAt: r.ReadAt,
	}
	if r.UserName.Valid {
		out.User = &domain.UserSummary{Name: r.UserName.String, Email: r.UserEmail.String}
	}
	if r.PostTitle.Valid {
		ps := &domain.PostSummary{Title: r.PostTitle.String}
		if r.PostTag.Valid {
			tag := r.PostTag.String
			ps.Tag = &tag
		}
		out.Post = ps
	}
	return out
}

// UserPostRepository persiste os registros de leitura no PostgreSQL.
type UserPostRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
}

// NewUserPostRepository cria e retorna uma nova instância do Repositório.
func NewUserPostRepository(db *sqlx.DB, dbTimeout time.Duration) *UserPostRepository {
	return &UserPostRepository{DB: db, DBTimeout: dbTimeout}
}

// MarkRead insere a leitura do par (usuário, post). A constraint UNIQUE (user_id, post_id)
// resolve requisições concorrentes: quem perde recebe ErrAlreadyRead.
func (r *UserPostRepository) MarkRead(ctx context.Context, userID, postID int64, status string) (_ domain.UserPostRead, err error) {
	defer database.Observe("user_posts.mark_read", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := markReadSQL(userID, postID, status)
	if err != nil {
		return domain.UserPostRead{}, apperror.NewDBError("Falha ao montar insert de leitura", err)
	}

	var out row
	err = r.DB.GetContext(ctx, &out, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserPostRead{}, ErrAlreadyRead
	}
	if err != nil {
		return domain.UserPostRead{}, apperror.NewDBError("Falha ao inserir leitura", err)
	}
	return out.toDomain(), nil
}

func markReadSQL(userID, postID int64, status string) (string, []interface{}, error) {
	return database.PSQL.Insert(table).
		Columns("user_id", "post_id", "status").
		Values(userID, postID, status).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING " + returning).
		ToSql()
}

// FindByID retorna a leitura com os resumos de usuário e post, ou nil se não existir.
func (r *UserPostRepository) FindByID(ctx context.Context, id int64) (_ *domain.UserPostRead, err error) {
	defer database.Observe("user_posts.find_by_id", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	b := database.PSQL.Select(joinedColumns...).From(table + " up")
	for _, j := range joins {
		b = b.JoinClause(j)
	}
	query, args, err := b.Where(sq.Eq{"up.id": id}).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar consulta de leitura", err)
	}
	return r.one(ctx, "Falha ao buscar leitura no DB", query, args)
}

// UpdateStatus altera apenas o status. Retorna nil quando o id não existe.
func (r *UserPostRepository) UpdateStatus(ctx context.Context, id int64, status string) (_ *domain.UserPostRead, err error) {
	defer database.Observe("user_posts.update_status", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Update(table).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar update de leitura", err)
	}
	return r.one(ctx, "Falha ao atualizar leitura", query, args)
}

// Delete remove a leitura e devolve a linha removida. Retorna nil quando o id não existe.
func (r *UserPostRepository) Delete(ctx context.Context, id int64) (_ *domain.UserPostRead, err error) {
	defer database.Observe("user_posts.delete", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Delete(table).Where(sq.Eq{"id": id}).Suffix(returning).ToSql()
	if err != nil {
		return nil, apperror.NewDBError("Falha ao montar delete de leitura", err)
	}
	return r.one(ctx, "Falha ao excluir leitura", query, args)
}

func (r *UserPostRepository) one(ctx context.Context, msg, query string, args []interface{}) (*domain.UserPostRead, error) {
	var out row
	err := r.DB.GetContext(ctx, &out, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewDBError(msg, err)
	}
	read := out.toDomain()
	return &read, nil
}

// List pagina todas as leituras, mais recentes primeiro, com usuário e post.
func (r *UserPostRepository) List(ctx context.Context, req domain.PageRequest) (_ domain.Page[domain.UserPostRead], err error) {
	defer database.Observe("user_posts.list", time.Now(), &err)
	return r.list(ctx, nil, req)
}

// ListByUser pagina as leituras de um usuário, mais recentes primeiro.
func (r *UserPostRepository) ListByUser(ctx context.Context, userID int64, req domain.PageRequest) (_ domain.Page[domain.UserPostRead], err error) {
	defer database.Observe("user_posts.list_by_user", time.Now(), &err)
	return r.list(ctx, sq.Eq{"up.user_id": userID}, req)
}

func (r *UserPostRepository) list(ctx context.Context, where sq.Sqlizer, req domain.PageRequest) (domain.Page[domain.UserPostRead], error) {
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	page, err := database.FetchPage[row](ctx, r.DB, listQuery(where), req)
	if err != nil {
		return domain.Page[domain.UserPostRead]{}, apperror.NewDBError("Falha ao listar leituras", err)
	}
	return domain.MapPage(page, row.toDomain), nil
}

func listQuery(where sq.Sqlizer) database.ListQuery {
	return database.ListQuery{
		From:    table + " up",
		Columns: joinedColumns,
		Joins:   joins,
		Where:   where,
		OrderBy: []string{"up.read_at DESC", "up.id DESC"},
	}
}

// CountRead conta as leituras concluídas (status LIDO) de um usuário.
func (r *UserPostRepository) CountRead(ctx context.Context, userID int64) (n int, err error) {
	defer database.Observe("user_posts.count_read", time.Now(), &err)
	ctx, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query, args, err := database.PSQL.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "status": domain.StatusRead}).
		ToSql()
	if err != nil {
		return 0, apperror.NewDBError("Falha ao montar contagem de leituras", err)
	}

	if err = r.DB.GetContext(ctx, &n, query, args...); err != nil {
		return 0, apperror.NewDBError("Falha ao contar leituras", err)
	}
	return n, nil
}
