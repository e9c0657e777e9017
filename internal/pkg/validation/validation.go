package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "remoteready/internal/errors"
)

// MaxPasswordBytes é o limite do bcrypt, contado em bytes e não em caracteres.
const MaxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usa o nome do campo no JSON nas mensagens, que é o que o cliente enxerga.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct valida um payload usando as tags `validate` e devolve um ValidationError
// com uma mensagem por campo inválido.
func Struct(payload interface{}) apperror.AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewValidationError("Payload inválido.")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return apperror.NewValidationError(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo '%s' é obrigatório", fe.Field())
	case "max":
		return fmt.Sprintf("o campo '%s' deve ter no máximo %s caracteres", fe.Field(), fe.Param())
	case "bcryptmax":
		return fmt.Sprintf("o campo '%s' deve ter no máximo %d bytes", fe.Field(), MaxPasswordBytes)
	case "email":
		return fmt.Sprintf("o campo '%s' deve ser um e-mail válido", fe.Field())
	case "oneof":
		return fmt.Sprintf("o campo '%s' deve ser um de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("o campo '%s' é inválido", fe.Field())
	}
}
