package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom rules registered and field errors
// keyed by the json name, so "firstName" rather than "FirstName".
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("consent", Consent)
}

// Consent passes only for a boolean that is exactly true.
// Consent cannot be implied, so false and a missing value both fail.
func Consent(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	return field.Kind() == reflect.Bool && field.Bool()
}

func fieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
