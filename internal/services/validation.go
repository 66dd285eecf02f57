package services

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters (including accented) and spaces only.
	fullNameRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	// Brazilian phone: (DD) DDDD-DDDD or (DD) DDDDD-DDDD, punctuation optional.
	brPhoneRegex = regexp.MustCompile(`^\(?\d{2}\)?\s?\d{4,5}-?\d{4}$`)
)

// NewValidator builds the validator shared by the domain services, with
// the storefront's custom rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their wire names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("full_name", func(fl validator.FieldLevel) bool {
		return fullNameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("br_phone", func(fl validator.FieldLevel) bool {
		return brPhoneRegex.MatchString(fl.Field().String())
	})

	return v
}

// fieldErrors translates validator failures into field-level detail for a
// ValidationError response.
func fieldErrors(err error) []FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}
	return details
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Por favor, informe um email válido"
	case "full_name":
		return "O nome deve conter apenas letras e espaços"
	case "br_phone":
		return "Por favor, informe um número de telefone válido"
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
