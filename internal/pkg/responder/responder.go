package responder

import (
	"encoding/json"
	"net/http"

	"remoteready/internal/domain"
	apperror "remoteready/internal/errors"
)

// maxBodyBytes limita o tamanho dos payloads aceitos.
const maxBodyBytes = 1 << 20

// JSON envia uma resposta JSON com o status informado. 204 não tem corpo.
func JSON(w http.ResponseWriter, status int, data interface{}) error {
	if status == http.StatusNoContent || data == nil {
		w.WriteHeader(status)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error traduz o erro para status + ErrorResponse. Erros 204 saem sem corpo.
func Error(w http.ResponseWriter, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	_ = JSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// Decode decodifica o corpo JSON da requisição em v.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
