package dto

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/StoreRating-api/internal/domain"
)

// Reglas de contraseña: 8 a 16 caracteres, al menos una mayúscula y un carácter especial.
const (
	passwordMinLen = 8
	passwordMaxLen = 16
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// ValidPassword aplica la regla de complejidad de contraseñas.
func ValidPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	return n >= passwordMinLen && n <= passwordMaxLen && upperRe.MatchString(p) && specialRe.MatchString(p)
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return ValidPassword(fl.Field().String())
		})
	})
	return validate
}

// Validate revisa las etiquetas `validate` de un DTO y devuelve un *domain.ValidationError
// con el primer campo inválido.
func Validate(in interface{}) error {
	err := instance().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), messageFor(fe))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "formato de email inválido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "password":
		return "debe tener entre 8 y 16 caracteres, con al menos una mayúscula y un carácter especial"
	}
	return "valor inválido"
}
