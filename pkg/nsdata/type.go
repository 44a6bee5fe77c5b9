package nsdata

import (
	"fmt"
	"strings"
)

// Kind identifies the shape a Type describes.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDateTime
	KindOptional
	KindList
	KindMap
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "object"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date-time"
	case KindOptional:
		return "optional"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Type is an immutable type descriptor. The zero value describes an
// arbitrary value that is passed through untouched.
type Type struct {
	kind Kind
	elem *Type
	ref  string
}

var (
	Any      = Type{kind: KindAny}
	String   = Type{kind: KindString}
	Int      = Type{kind: KindInt}
	Float    = Type{kind: KindFloat}
	Bool     = Type{kind: KindBool}
	Date     = Type{kind: KindDate}
	DateTime = Type{kind: KindDateTime}
)

// Optional marks t as nullable. Optional(Optional(t)) is Optional(t).
func Optional(t Type) Type {
	if t.kind == KindOptional {
		return t
	}
	return Type{kind: KindOptional, elem: &t}
}

// List describes an ordered sequence of t.
func List(t Type) Type {
	return Type{kind: KindList, elem: &t}
}

// Map describes a string-keyed mapping with values of t.
func Map(t Type) Type {
	return Type{kind: KindMap, elem: &t}
}

// Ref names another schema. The name is resolved when a value is
// constructed, so the schema does not need to exist yet.
func Ref(name string) Type {
	return Type{kind: KindRef, ref: name}
}

func (t Type) Kind() Kind { return t.kind }

// Elem returns the element type of Optional, List and Map descriptors.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Any
	}
	return *t.elem
}

func (t Type) RefName() string { return t.ref }

func (t Type) IsOptional() bool { return t.kind == KindOptional }

// String renders t in schema file notation, e.g. "?Station[]".
func (t Type) String() string {
	switch t.kind {
	case KindOptional:
		return "?" + t.Elem().String()
	case KindList:
		return t.Elem().String() + "[]"
	case KindMap:
		return "map[" + t.Elem().String() + "]"
	case KindRef:
		return t.ref
	default:
		return t.kind.String()
	}
}

// ParseType reads the schema file notation. A leading "?" marks an optional
// value, a trailing "[]" a list and "map[T]" a mapping. Scalar names follow
// the API reference (string, int32, double, date-time, ...); any other
// identifier is a reference to a schema.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("nsdata: empty type")
	}

	if rest, ok := strings.CutPrefix(s, "?"); ok {
		elem, err := ParseType(rest)
		if err != nil {
			return Type{}, err
		}
		return Optional(elem), nil
	}

	if rest, ok := strings.CutSuffix(s, "[]"); ok {
		elem, err := ParseType(rest)
		if err != nil {
			return Type{}, err
		}
		if elem.IsOptional() {
			return Type{}, fmt.Errorf("nsdata: optional list elements are not supported: %q", s)
		}
		return List(elem), nil
	}

	if strings.HasPrefix(s, "map[") && strings.HasSuffix(s, "]") {
		elem, err := ParseType(s[len("map[") : len(s)-1])
		if err != nil {
			return Type{}, err
		}
		return Map(elem), nil
	}

	switch strings.ToLower(s) {
	case "string", "url", "uri":
		return String, nil
	case "int", "int32", "int64", "integer", "long":
		return Int, nil
	case "float", "double", "number":
		return Float, nil
	case "bool", "boolean":
		return Bool, nil
	case "date":
		return Date, nil
	case "date-time", "datetime":
		return DateTime, nil
	case "object", "any":
		return Any, nil
	}

	if !isIdentifier(s) {
		return Type{}, fmt.Errorf("nsdata: invalid type %q", s)
	}
	return Ref(s), nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
