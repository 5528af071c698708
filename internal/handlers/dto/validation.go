package dto

import (
	errs "errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// RegisterCustomValidators registra as validações de formato próprias no
// engine de binding do Gin. Deve ser chamado uma vez na inicialização.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("unexpected validator engine")
	}

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		var hasUpper, hasLower, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasUpper && hasLower && hasDigit
	})
}

// MapValidationErrors converte os erros do validator em erros de campo da
// resposta, um por violação, com o nome do campo em snake_case do JSON.
func MapValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fieldName(fe),
			Message: messageFor(fe),
			Tag:     fe.Tag(),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	// Namespace vem como "Struct.Field"; só o campo interessa ao cliente
	name := fe.Field()
	return toSnakeCase(name)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "phone":
		return "must be a valid phone number"
	case "password_strength":
		return "must contain upper case, lower case and digit characters"
	case "uuid":
		return "must be a valid uuid"
	case "eqfield":
		return fmt.Sprintf("must match %s", toSnakeCase(fe.Param()))
	default:
		return fmt.Sprintf("failed on %s validation", fe.Tag())
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
