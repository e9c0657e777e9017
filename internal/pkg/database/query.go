package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"remoteready/internal/domain"
	"remoteready/internal/pkg/metrics"
)

// PSQL é o builder do squirrel com placeholders do PostgreSQL ($1, $2...).
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListQuery descreve uma listagem paginada: a mesma tabela e filtro
// alimentam o COUNT e o SELECT ordenado.
type ListQuery struct {
	From    string   // tabela, com alias opcional ("user_posts up")
	Columns []string // colunas do SELECT
	Joins   []string // JOINs aplicados apenas ao SELECT
	Where   sq.Sqlizer
	OrderBy []string
}

// CountSQL monta o SELECT COUNT(*) com o mesmo filtro da listagem.
func (q ListQuery) CountSQL() (string, []interface{}, error) {
	b := PSQL.Select("COUNT(*)").From(q.From)
	if q.Where != nil {
		b = b.Where(q.Where)
	}
	return b.ToSql()
}

// PageSQL monta o SELECT ordenado com LIMIT/OFFSET da página solicitada.
func (q ListQuery) PageSQL(req domain.PageRequest) (string, []interface{}, error) {
	b := PSQL.Select(q.Columns...).From(q.From)
	for _, j := range q.Joins {
		b = b.JoinClause(j)
	}
	if q.Where != nil {
		b = b.Where(q.Where)
	}
	return b.OrderBy(q.OrderBy...).
		Limit(req.Limit()).
		Offset(req.Offset()).
		ToSql()
}

// FetchPage executa o COUNT e o SELECT e devolve a página montada.
func FetchPage[T any](ctx context.Context, db sqlx.QueryerContext, q ListQuery, req domain.PageRequest) (domain.Page[T], error) {
	req = req.Normalize()

	countSQL, countArgs, err := q.CountSQL()
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("falha ao montar COUNT: %w", err)
	}
	var total int
	if err := sqlx.GetContext(ctx, db, &total, countSQL, countArgs...); err != nil {
		return domain.Page[T]{}, fmt.Errorf("falha ao contar registros: %w", err)
	}

	items := []T{}
	if total > 0 && req.Offset() < uint64(total) {
		pageSQL, pageArgs, err := q.PageSQL(req)
		if err != nil {
			return domain.Page[T]{}, fmt.Errorf("falha ao montar SELECT: %w", err)
		}
		if err := sqlx.SelectContext(ctx, db, &items, pageSQL, pageArgs...); err != nil {
			return domain.Page[T]{}, fmt.Errorf("falha ao listar registros: %w", err)
		}
	}

	return domain.NewPage(req, total, items), nil
}

// ContainsInsensitive monta o filtro "coluna ILIKE %valor%" escapando curingas.
func ContainsInsensitive(column, value string) sq.Sqlizer {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return sq.ILike{column: "%" + escaped + "%"}
}

// Observe registra a duração de uma operação no banco. Uso: defer database.Observe("op", time.Now(), &err).
func Observe(method string, start time.Time, err *error) {
	metrics.ObserveDBRequest(method, err == nil || *err == nil, time.Since(start))
}
