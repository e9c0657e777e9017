package database_test

import (
	"context"
	"math"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remoteready/internal/domain"
	"remoteready/internal/pkg/database"
)

func TestListQuery_CountSQL(t *testing.T) {
	q := database.ListQuery{
		From:  "companies",
		Where: sq.Eq{"hiring_now": "Y"},
	}

	query, args, err := q.CountSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM companies WHERE hiring_now = $1", query)
	assert.Equal(t, []interface{}{"Y"}, args)
}

func TestListQuery_PageSQL(t *testing.T) {
	q := database.ListQuery{
		From:    "blog_posts",
		Columns: []string{"id", "title"},
		OrderBy: []string{"created_at DESC", "id DESC"},
	}

	query, args, err := q.PageSQL(domain.NewPageRequest(3, 10))
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title FROM blog_posts ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 20", query)
	assert.Empty(t, args)
}

func TestListQuery_PageSQLWithJoins(t *testing.T) {
	q := database.ListQuery{
		From:    "user_posts up",
		Columns: []string{"up.id", "p.title AS post_title"},
		Joins:   []string{"JOIN blog_posts p ON p.id = up.post_id"},
		Where:   sq.Eq{"up.user_id": int64(4)},
		OrderBy: []string{"up.read_at DESC"},
	}

	query, args, err := q.PageSQL(domain.NewPageRequest(1, 5))
	require.NoError(t, err)
	assert.Contains(t, query, "FROM user_posts up JOIN blog_posts p ON p.id = up.post_id WHERE up.user_id = $1")
	assert.Contains(t, query, "ORDER BY up.read_at DESC LIMIT 5")
	assert.Equal(t, []interface{}{int64(4)}, args)
}

func TestContainsInsensitive_EscapesWildcards(t *testing.T) {
	query, args, err := database.ContainsInsensitive("tag", "50%_go").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "tag ILIKE ?", query)
	assert.Equal(t, []interface{}{`%50\%\_go%`}, args)
}

type row struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

func TestFetchPage(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM blog_posts")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title FROM blog_posts ORDER BY id DESC LIMIT 5 OFFSET 10")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(2, "b").AddRow(1, "a"))

	q := database.ListQuery{From: "blog_posts", Columns: []string{"id", "title"}, OrderBy: []string{"id DESC"}}
	page, err := database.FetchPage[row](context.Background(), db, q, domain.NewPageRequest(3, 5))

	require.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12, page.TotalRecords)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "b", page.Items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPage_SkipsSelectBeyondLastPage(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM companies")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	q := database.ListQuery{From: "companies", Columns: []string{"id", "title"}, OrderBy: []string{"id ASC"}}
	page, err := database.FetchPage[row](context.Background(), db, q, domain.NewPageRequest(9, 10))

	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, 1, page.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPage_OverflowingPageIsPastTheEnd(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM companies")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	q := database.ListQuery{From: "companies", Columns: []string{"id", "title"}, OrderBy: []string{"id ASC"}}
	page, err := database.FetchPage[row](context.Background(), db, q, domain.NewPageRequest(1<<62+1, 4))

	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, 1, page.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchPage_HugePageSizeKeepsTotalPages(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM blog_posts")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title FROM blog_posts ORDER BY id DESC LIMIT 9223372036854775807 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(3, "c").AddRow(2, "b").AddRow(1, "a"))

	q := database.ListQuery{From: "blog_posts", Columns: []string{"id", "title"}, OrderBy: []string{"id DESC"}}
	page, err := database.FetchPage[row](context.Background(), db, q, domain.NewPageRequest(1, math.MaxInt64))

	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
