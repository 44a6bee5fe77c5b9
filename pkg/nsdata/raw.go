package nsdata

import (
	"sort"
	"strings"
)

// Raw is a case-insensitive, consumable view over a decoded JSON or XML
// record. Fields are removed as they are taken so that whatever is left
// afterwards is, by definition, unknown to the schema.
type Raw struct {
	values map[string]any
	names  map[string]string
}

// NewRaw indexes m by lowercased key. When two keys differ only in case the
// lexically greater original spelling wins, which keeps the result stable.
func NewRaw(m map[string]any) *Raw {
	r := &Raw{
		values: make(map[string]any, len(m)),
		names:  make(map[string]string, len(m)),
	}
	for k, v := range m {
		lk := strings.ToLower(k)
		if prev, ok := r.names[lk]; ok && prev > k {
			continue
		}
		r.values[lk] = v
		r.names[lk] = k
	}
	return r
}

// Take removes and returns the value stored under name.
func (r *Raw) Take(name string) (any, bool) {
	lk := strings.ToLower(name)
	v, ok := r.values[lk]
	if ok {
		delete(r.values, lk)
		delete(r.names, lk)
	}
	return v, ok
}

// Peek returns the value stored under name without consuming it.
func (r *Raw) Peek(name string) (any, bool) {
	v, ok := r.values[strings.ToLower(name)]
	return v, ok
}

func (r *Raw) Has(name string) bool {
	_, ok := r.values[strings.ToLower(name)]
	return ok
}

func (r *Raw) Len() int { return len(r.values) }

// Keys lists the remaining keys in their original spelling, sorted.
func (r *Raw) Keys() []string {
	keys := make([]string, 0, len(r.names))
	for _, k := range r.names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map copies the remaining entries using their original keys.
func (r *Raw) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for lk, v := range r.values {
		out[r.names[lk]] = v
	}
	return out
}
