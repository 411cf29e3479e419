package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = newValidator()

// FieldError describes one rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by the name the client sent, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates v against its validate tags and returns one
// FieldError per failed field, or nil when v is valid.
func ValidateRequest(v interface{}) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "request", Error: "Request is invalid"}}
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, FieldError{
			Field: fe.Field(),
			Error: fieldErrorMessage(fe),
		})
	}
	return details
}

func fieldErrorMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Param() == "1" {
			return label + " is required"
		}
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be %s characters or fewer", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return "Field"
	}
	label := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
