package domain_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
)

func TestResult_Success(t *testing.T) {
	r := domain.Success(domain.Company{ID: 1, Name: "Remote Inc"}, http.StatusCreated)

	assert.True(t, r.IsSuccess())
	assert.Equal(t, http.StatusCreated, r.StatusCode())
	assert.Equal(t, "Remote Inc", r.Value().Name)
	assert.Nil(t, r.Err())
	assert.Empty(t, r.Message())
}

func TestResult_Failure(t *testing.T) {
	r := domain.Failure[domain.Company](apperror.NewNotFoundError("Empresa não encontrada"))

	assert.False(t, r.IsSuccess())
	assert.Equal(t, http.StatusNotFound, r.StatusCode())
	assert.Equal(t, "Empresa não encontrada", r.Message())
	assert.Zero(t, r.Value().ID)
}

func TestResult_FailureWithNilErrorIsInternal(t *testing.T) {
	r := domain.Failure[int](nil)

	assert.False(t, r.IsSuccess())
	assert.Equal(t, http.StatusInternalServerError, r.StatusCode())
}
