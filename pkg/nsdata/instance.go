package nsdata

import "fmt"

type absent struct{}

func (absent) String() string   { return "<absent>" }
func (absent) GoString() string { return "nsdata.Absent" }

// Absent is the value of a field that was missing or null in the raw record.
var Absent any = absent{}

func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// Instance is a record constructed from a schema. It holds a value for every
// declared field, Absent where the raw record had none.
type Instance struct {
	schema *Schema
	values []any
}

func newInstance(s *Schema) *Instance {
	inst := &Instance{schema: s, values: make([]any, len(s.fields))}
	for i := range inst.values {
		inst.values[i] = Absent
	}
	return inst
}

func (i *Instance) Schema() *Schema { return i.schema }

// Lookup returns the value of a declared field, matched ignoring case.
func (i *Instance) Lookup(name string) (any, bool) {
	idx, ok := i.schema.index[lower(name)]
	if !ok {
		return nil, false
	}
	return i.values[idx], true
}

// Get is Lookup for callers that know the field exists. Undeclared names
// yield Absent.
func (i *Instance) Get(name string) any {
	v, ok := i.Lookup(name)
	if !ok {
		return Absent
	}
	return v
}

func (i *Instance) IsAbsent(name string) bool {
	return IsAbsent(i.Get(name))
}

// Set assigns a declared field. Hooks use it to fill fields derived from
// keys the schema does not declare.
func (i *Instance) Set(name string, v any) error {
	idx, ok := i.schema.index[lower(name)]
	if !ok {
		return fmt.Errorf("nsdata: %s has no field %q", i.schema.name, name)
	}
	i.values[idx] = v
	return nil
}

// Fields returns the declared fields in order.
func (i *Instance) Fields() []Field { return i.schema.Fields() }

// Map flattens the instance into plain maps and slices, leaving out absent
// fields. Nested instances are flattened too.
func (i *Instance) Map() map[string]any {
	out := make(map[string]any, len(i.values))
	for idx, f := range i.schema.fields {
		v := i.values[idx]
		if IsAbsent(v) {
			continue
		}
		out[f.Name] = plain(v)
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case *Instance:
		return x.Map()
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = plain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = plain(item)
		}
		return out
	default:
		return v
	}
}
