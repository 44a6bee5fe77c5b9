package nsdata

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemaFile is the YAML form of a set of schemas.
type SchemaFile struct {
	Schemas []SchemaSpec `yaml:"schemas"`
}

type SchemaSpec struct {
	Name   string      `yaml:"name"`
	Doc    string      `yaml:"doc,omitempty"`
	Hook   bool        `yaml:"hook,omitempty"`
	Fields []FieldSpec `yaml:"fields"`
}

type FieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Doc  string `yaml:"doc,omitempty"`
}

// ParseSchemaFile decodes a schema file. Unknown keys are rejected so typos
// in hand-edited files surface early.
func ParseSchemaFile(data []byte) (*SchemaFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f SchemaFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("nsdata: parse schema file: %w", err)
	}
	return &f, nil
}

// Build turns every entry into a Schema, parsing the type notation.
func (f *SchemaFile) Build() ([]*Schema, error) {
	schemas := make([]*Schema, 0, len(f.Schemas))
	for _, spec := range f.Schemas {
		fields := make([]Field, 0, len(spec.Fields))
		for _, fs := range spec.Fields {
			t, err := ParseType(fs.Type)
			if err != nil {
				return nil, fmt.Errorf("nsdata: %s.%s: %w", spec.Name, fs.Name, err)
			}
			fields = append(fields, Field{Name: fs.Name, Type: t, Doc: fs.Doc})
		}
		s, err := newSchema(spec.Name, fields)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// LoadRegistry parses a schema file into a new registry and verifies that
// every reference can be resolved.
func LoadRegistry(data []byte) (*Registry, error) {
	f, err := ParseSchemaFile(data)
	if err != nil {
		return nil, err
	}
	schemas, err := f.Build()
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()
	if err := reg.Register(schemas...); err != nil {
		return nil, err
	}
	if err := reg.Check(); err != nil {
		return nil, err
	}
	return reg, nil
}
