package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage flattens validator errors into a single readable line
// for the error body, e.g. "passenger_name is required; seats must be > 0".
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldName(fe)))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be > %s", fieldName(fe), fe.Param()))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be >= %s", fieldName(fe), fe.Param()))
		case "lte":
			parts = append(parts, fmt.Sprintf("%s must be <= %s", fieldName(fe), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldName(fe)))
		}
	}
	return strings.Join(parts, "; ")
}

func fieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
