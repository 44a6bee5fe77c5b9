package nsdata

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Field is one declared field of a schema.
type Field struct {
	Name string
	Type Type
	Doc  string
}

// Schema is a named, ordered set of fields describing one record shape.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema declares a schema. Field names must be unique ignoring case;
// a duplicate is a programming error and panics.
func NewSchema(name string, fields ...Field) *Schema {
	s, err := newSchema(name, fields)
	if err != nil {
		panic(err)
	}
	return s
}

func newSchema(name string, fields []Field) (*Schema, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("nsdata: invalid schema name %q", name)
	}
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		key := strings.ToLower(f.Name)
		if key == "" {
			return nil, fmt.Errorf("nsdata: schema %s: field %d has no name", name, i)
		}
		if _, dup := s.index[key]; dup {
			return nil, fmt.Errorf("nsdata: schema %s: duplicate field %q", name, f.Name)
		}
		s.fields[i] = f
		s.index[key] = i
	}
	return s, nil
}

func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a declared field ignoring case.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[strings.ToLower(name)]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Hook runs after the declared fields of an instance have been resolved. It
// receives the raw keys the schema did not declare and may consume some of
// them to derive field values. Keys left in rest are reported as extras.
// Values a hook converts should go through hc so they are checked with the
// options and path of the enclosing construction.
type Hook func(inst *Instance, rest *Raw, hc *HookContext) error

// Registry maps schema names to schemas. References between schemas are
// resolved through the registry at construction time, so schemas can be
// registered in any order and may refer to themselves.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
	hooks   map[string]Hook
}

func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*Schema),
		hooks:   make(map[string]Hook),
	}
}

// Register adds schemas to the registry. Names must be unique.
func (r *Registry) Register(schemas ...*Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range schemas {
		if _, exists := r.schemas[s.name]; exists {
			return fmt.Errorf("nsdata: schema %s already registered", s.name)
		}
		r.schemas[s.name] = s
	}
	return nil
}

// MustRegister is Register for package initialisation.
func (r *Registry) MustRegister(schemas ...*Schema) *Registry {
	if err := r.Register(schemas...); err != nil {
		panic(err)
	}
	return r
}

// SetHook attaches a post-construction hook to the named schema. The schema
// does not have to be registered yet.
func (r *Registry) SetHook(name string, h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[name] = h
}

func (r *Registry) Lookup(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	if !ok {
		return nil, &UnknownSchemaError{Name: name}
	}
	return s, nil
}

func (r *Registry) hook(name string) Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hooks[name]
}

// Names lists the registered schema names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check reports references to schemas that are not registered.
func (r *Registry) Check() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []string
	for _, s := range r.schemas {
		for _, f := range s.fields {
			if name := refName(f.Type); name != "" {
				if _, ok := r.schemas[name]; !ok {
					missing = append(missing, s.name+"."+f.Name+" -> "+name)
				}
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("nsdata: unresolved references: %s", strings.Join(missing, ", "))
	}
	return nil
}

func refName(t Type) string {
	for {
		switch t.kind {
		case KindRef:
			return t.ref
		case KindOptional, KindList, KindMap:
			t = t.Elem()
		default:
			return ""
		}
	}
}
