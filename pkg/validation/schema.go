package validation

import (
	"reflect"
	"strconv"
	"strings"
)

// FieldSchema describes the rules on one struct field in a form a browser can apply
// before submitting. It is derived from the same validate tags the server checks.
type FieldSchema struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Required   bool   `json:"required"`
	Min        *int   `json:"min,omitempty"`
	Max        *int   `json:"max,omitempty"`
	Format     string `json:"format,omitempty"`
	MustBeTrue bool   `json:"mustBeTrue,omitempty"`
}

// Describe returns the schema of every validated field of the struct v (or pointer to struct).
// Fields without a validate tag are skipped.
func Describe(v any) []FieldSchema {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	out := make([]FieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("validate")
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}

		fs := FieldSchema{Name: name, Type: jsonType(f.Type)}
		for _, rule := range strings.Split(tag, ",") {
			key, param, _ := strings.Cut(rule, "=")
			switch key {
			case "required":
				fs.Required = true
			case "consent":
				fs.Required = true
				fs.MustBeTrue = true
			case "email":
				fs.Format = "email"
			case "min":
				if n, err := strconv.Atoi(param); err == nil {
					fs.Min = &n
				}
			case "max":
				if n, err := strconv.Atoi(param); err == nil {
					fs.Max = &n
				}
			}
		}
		out = append(out, fs)
	}
	return out
}

// Lookup finds the schema for a field by name
func Lookup(schema []FieldSchema, name string) (FieldSchema, bool) {
	for _, fs := range schema {
		if fs.Name == name {
			return fs, true
		}
	}
	return FieldSchema{}, false
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "string"
	}
}
