package nsdata

import (
	"strings"
)

// Resolve converts v according to t. Optional values that are missing or
// null resolve to Absent, lists keep their order and references construct
// the named schema, which is looked up only now.
func (r *Registry) Resolve(t Type, v any, opts ...Option) (any, error) {
	res := &resolver{reg: r, opts: newOptions(opts)}
	return res.resolve(t.String(), t, v)
}

// Construct builds an instance of the named schema from a raw record.
func (r *Registry) Construct(name string, m map[string]any, opts ...Option) (*Instance, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	res := &resolver{reg: r, opts: newOptions(opts)}
	return res.construct(name, s, NewRaw(m))
}

type resolver struct {
	reg  *Registry
	opts *options
}

func (res *resolver) resolve(path string, t Type, v any) (any, error) {
	switch t.kind {
	case KindOptional:
		if v == nil {
			return Absent, nil
		}
		return res.resolve(path, t.Elem(), v)
	case KindList:
		items, ok := v.([]any)
		if !ok {
			return nil, mismatch(path, t.String(), v, nil)
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			elem, err := res.resolve(elemPath(path, i), t.Elem(), item)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case KindMap:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(path, t.String(), v, nil)
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			elem, err := res.resolve(keyPath(path, k), t.Elem(), item)
			if err != nil {
				return nil, err
			}
			out[k] = elem
		}
		return out, nil
	case KindRef:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(path, t.ref, v, nil)
		}
		s, err := res.reg.Lookup(t.ref)
		if err != nil {
			return nil, err
		}
		return res.construct(path, s, NewRaw(m))
	case KindString:
		return toString(path, v)
	case KindInt:
		return toInt(path, v)
	case KindFloat:
		return toFloat(path, v)
	case KindBool:
		return toBool(path, v)
	case KindDate:
		return toDate(path, v)
	case KindDateTime:
		return toDateTime(path, v)
	default:
		return v, nil
	}
}

func (res *resolver) construct(path string, s *Schema, raw *Raw) (*Instance, error) {
	inst := newInstance(s)

	for idx, f := range s.fields {
		v, ok := raw.Take(f.Name)
		if !ok || v == nil {
			if !f.Type.IsOptional() {
				if res.opts.strict {
					return nil, &MissingFieldError{Schema: s.name, Field: f.Name, Path: path}
				}
				res.opts.logger.Debug("required field missing", "schema", s.name, "path", path, "field", f.Name)
			}
			continue
		}
		out, err := res.resolve(keyPath(path, f.Name), f.Type, v)
		if err != nil {
			return nil, err
		}
		inst.values[idx] = out
	}

	if hook := res.reg.hook(s.name); hook != nil {
		if err := hook(inst, raw, &HookContext{res: res, path: path}); err != nil {
			return nil, err
		}
	}

	if raw.Len() > 0 {
		res.opts.logger.Warn("record received extra fields",
			"schema", s.name,
			"path", path,
			"fields", raw.Keys(),
		)
	}
	return inst, nil
}

// HookContext is handed to a Hook for the record being constructed.
type HookContext struct {
	res  *resolver
	path string
}

// Resolve converts the value of the raw key field according to t, as
// Registry.Resolve would with the options of the current construction.
func (hc *HookContext) Resolve(field string, t Type, v any) (any, error) {
	return hc.res.resolve(keyPath(hc.path, field), t, v)
}

func lower(s string) string { return strings.ToLower(s) }
