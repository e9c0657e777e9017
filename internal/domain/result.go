package domain

import (
	"net/http"

	apperror "remoteready/internal/errors"
)

// Result carrega o desfecho de um caso de uso até a borda HTTP.
// Exatamente um dos lados está preenchido: valor (sucesso) ou erro (falha).
type Result[T any] struct {
	value  T
	status int
	err    apperror.AppError
}

// Success cria um resultado de sucesso com o status informado (200, 201).
func Success[T any](value T, status int) Result[T] {
	return Result[T]{value: value, status: status}
}

// Failure cria um resultado de falha; o status vem do próprio AppError.
// Um erro nil vira InternalError para nunca produzir um resultado ambíguo.
func Failure[T any](err apperror.AppError) Result[T] {
	if err == nil {
		err = apperror.NewInternalError("Falha sem erro associado", nil)
	}
	return Result[T]{status: err.HTTPStatus(), err: err}
}

// IsSuccess indica se o resultado é de sucesso.
func (r Result[T]) IsSuccess() bool { return r.err == nil }

// Value retorna o valor (zero value em caso de falha).
func (r Result[T]) Value() T { return r.value }

// Err retorna o erro da falha (nil em caso de sucesso).
func (r Result[T]) Err() apperror.AppError { return r.err }

// StatusCode retorna o status HTTP associado ao resultado.
func (r Result[T]) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Message retorna a mensagem de erro (vazia em caso de sucesso).
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Message()
}
