package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Translator looks up localized strings. vars are name/value pairs for {name} placeholders.
// A missing key is returned unchanged.
type Translator interface {
	T(key string, vars ...string) string
}

// FieldError is a single violated rule on one field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// FieldErrors is every violation found in one validation pass, in field order
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// ByField groups the messages under their field name
func (fe FieldErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(fe))
	for _, e := range fe {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Has reports whether field has at least one violation
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// English messages used when the translator has no entry
var defaultMessages = map[string]string{
	"required": "{field} is required",
	"min":      "{field} must be at least {param} characters",
	"max":      "{field} must be at most {param} characters",
	"email":    "Please enter a valid email address",
	"consent":  "You must consent to receive communications",
	"default":  "{field} is invalid",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages.
// t may be nil, in which case English messages are produced.
func FormatValidationErrors(err error, t Translator) FieldErrors {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return FieldErrors{{Rule: "invalid", Message: err.Error()}}
	}

	out := make(FieldErrors, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, formatSingleError(e, t))
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError, t Translator) FieldError {
	field := e.Field()
	label := getFieldLabel(field, t)
	tag := e.Tag()
	param := e.Param()

	key := tag
	switch tag {
	case "required", "email", "consent":
	case "min", "max":
		if e.Kind().String() != "string" {
			key = "default"
		}
	default:
		key = "default"
	}

	return FieldError{
		Field:   field,
		Rule:    tag,
		Param:   param,
		Message: translate(t, "validation."+key, defaultMessages[key], "field", label, "param", param),
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string, t Translator) string {
	return translate(t, "form."+fieldName, formatCamelCase(fieldName))
}

func translate(t Translator, key, fallback string, vars ...string) string {
	msg := fallback
	if t != nil {
		if v := t.T(key, vars...); v != key {
			return v
		}
	}
	for i := 0; i+1 < len(vars); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+vars[i]+"}", vars[i+1])
	}
	return msg
}

// formatCamelCase converts camelCase to a capitalised phrase: "firstName" -> "First name"
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case i == 0 && r >= 'a' && r <= 'z':
			result.WriteRune(r - 'a' + 'A')
		case i > 0 && r >= 'A' && r <= 'Z':
			result.WriteRune(' ')
			result.WriteRune(r - 'A' + 'a')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
