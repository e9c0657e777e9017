package userrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewUserRepository(sqlx.NewDb(mockDB, "postgres"), time.Second), mock
}

func TestFindByEmail_IsCaseInsensitive(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1")).
		WithArgs("Ana@X.com").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Ana", "ana@x.com", "$2a$hash", "USER", time.Now()))

	u, err := repo.FindByEmail(context.Background(), "Ana@X.com")

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "$2a$hash", u.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFoundReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns))

	u, err := repo.FindByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestCreate_UniqueViolationKeepsCause(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,password_hash,role) VALUES ($1,$2,$3,$4) RETURNING")).
		WithArgs("Ana", "ana@x.com", "$2a$hash", "USER").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "$2a$hash", Role: "USER"})

	require.Error(t, err)
	assert.True(t, apperror.IsUniqueViolation(err))
}

func TestUpdate_MissingReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
		WillReturnRows(sqlmock.NewRows(columns))

	u, err := repo.Update(context.Background(), domain.User{ID: 3, Name: "Ana"})

	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestList_CountsThenPages(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id ASC LIMIT 2 OFFSET 2")).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "Caio", "caio@x.com", "h", "USER", time.Now()))

	page, err := repo.List(context.Background(), domain.NewPageRequest(2, 2))

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 3, page.TotalRecords)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Caio", page.Items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
