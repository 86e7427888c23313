package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/supermercado/backoffice-system/pkg/cpf"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// It registers the custom "cpf" tag backed by the check-digit algorithm.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpf.Valid(fl.Field().String())
	})
	return &echoValidator{v: v}
}

// ValidationError reports which struct fields failed, so callers can react
// to a specific rule without parsing the message.
type ValidationError struct {
	fields map[string]bool
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

// FieldFailed reports whether the named struct field failed validation.
// Matching is case-insensitive.
func (e *ValidationError) FieldFailed(name string) bool {
	return e.fields[strings.ToLower(name)]
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make(map[string]bool, len(ve))
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields[strings.ToLower(fe.Field())] = true
				msgs = append(msgs, fieldError(fe))
			}
			return &ValidationError{fields: fields, msg: strings.Join(msgs, "; ")}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "cpf":
		return field + " is not a valid cpf"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "ltfield":
		return fmt.Sprintf("%s must be lower than %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
