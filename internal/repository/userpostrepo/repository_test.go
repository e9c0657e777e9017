package userpostrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remoteready/internal/domain"
)

func newMockRepo(t *testing.T) (*UserPostRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewUserPostRepository(sqlx.NewDb(mockDB, "postgres"), time.Second), mock
}

var baseColumns = []string{"id", "user_id", "post_id", "status", "read_at"}

func TestMarkReadSQL_UsesConflictGuard(t *testing.T) {
	query, args, err := markReadSQL(1, 2, domain.StatusRead)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO user_posts (user_id,post_id,status) VALUES ($1,$2,$3) ON CONFLICT (user_id, post_id) DO NOTHING RETURNING id, user_id, post_id, status, read_at",
		query)
	assert.Equal(t, []interface{}{int64(1), int64(2), "LIDO"}, args)
}

func TestMarkRead_FirstCallInserts(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, post_id) DO NOTHING")).
		WithArgs(int64(1), int64(2), "LIDO").
		WillReturnRows(sqlmock.NewRows(baseColumns).AddRow(10, 1, 2, "LIDO", time.Now()))

	read, err := repo.MarkRead(context.Background(), 1, 2, domain.StatusRead)

	require.NoError(t, err)
	assert.Equal(t, int64(10), read.ID)
	assert.Nil(t, read.User)
	assert.Nil(t, read.Post)
}

func TestMarkRead_ConflictIsAlreadyRead(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, post_id) DO NOTHING")).
		WillReturnRows(sqlmock.NewRows(baseColumns))

	_, err := repo.MarkRead(context.Background(), 1, 2, domain.StatusRead)

	assert.ErrorIs(t, err, ErrAlreadyRead)
}

func TestListByUser_JoinsAndOrdering(t *testing.T) {
	query, args, err := listQuery(nil).PageSQL(domain.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Contains(t, query, "FROM user_posts up JOIN users u ON u.id = up.user_id JOIN blog_posts p ON p.id = up.post_id")
	assert.Contains(t, query, "ORDER BY up.read_at DESC, up.id DESC")
	assert.Empty(t, args)

	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM user_posts up WHERE up.user_id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE up.user_id = $1 ORDER BY up.read_at DESC")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(append(baseColumns, "user_name", "user_email", "post_title", "post_tag")).
			AddRow(1, 4, 9, "LIDO", time.Now(), "Ana", "ana@x.com", "Remoto", nil))

	page, err := repo.ListByUser(context.Background(), 4, domain.NewPageRequest(1, 10))

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	item := page.Items[0]
	require.NotNil(t, item.User)
	assert.Equal(t, "Ana", item.User.Name)
	require.NotNil(t, item.Post)
	assert.Equal(t, "Remoto", item.Post.Title)
	assert.Nil(t, item.Post.Tag)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRead_FiltersByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM user_posts WHERE status = $1 AND user_id = $2")).
		WithArgs("LIDO", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountRead(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
