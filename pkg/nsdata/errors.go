package nsdata

import (
	"encoding/json"
	"fmt"
)

// TypeMismatchError reports a raw value that does not fit its declared type,
// including temporal strings that fail to parse.
type TypeMismatchError struct {
	Path     string
	Expected string
	Got      string
	Err      error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("nsdata: %s: expected %s, got %s", e.Path, e.Expected, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// MissingFieldError is returned in strict mode when a required field is not
// present in the raw record.
type MissingFieldError struct {
	Schema string
	Field  string
	Path   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("nsdata: %s: required field %s.%s is missing", e.Path, e.Schema, e.Field)
}

// UnknownSchemaError is returned when a reference names a schema that was
// never registered.
type UnknownSchemaError struct {
	Name string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("nsdata: unknown schema %q", e.Name)
}

func mismatch(path, expected string, v any, err error) *TypeMismatchError {
	return &TypeMismatchError{Path: path, Expected: expected, Got: describe(v), Err: err}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
