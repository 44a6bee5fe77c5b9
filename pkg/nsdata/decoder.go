package nsdata

import (
	"log/slog"
	"time"
)

type options struct {
	logger *slog.Logger
	strict bool
}

// Option configures decoding.
type Option func(*options)

// WithLogger sets the logger used for unknown and missing field reports.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStrict makes a missing required field an error instead of leaving it
// at its zero value.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	o.logger = o.logger.With("component", "nsdata")
	return o
}

// Decoder walks one raw record on behalf of a generated decode function.
// Fields are consumed in the order they are read; the first error sticks
// and makes every later read a no-op.
type Decoder struct {
	schema string
	path   string
	raw    *Raw
	opts   *options
	err    error
}

func NewDecoder(schema string, m map[string]any, opts ...Option) *Decoder {
	return &Decoder{
		schema: schema,
		path:   schema,
		raw:    NewRaw(m),
		opts:   newOptions(opts),
	}
}

func (d *Decoder) child(schema, path string, m map[string]any) *Decoder {
	return &Decoder{schema: schema, path: path, raw: NewRaw(m), opts: d.opts}
}

func (d *Decoder) Schema() string { return d.schema }

func (d *Decoder) Path() string { return d.path }

func (d *Decoder) FieldPath(name string) string { return keyPath(d.path, name) }

// Take consumes a raw key that is not a declared field, for use in
// post-decode hooks.
func (d *Decoder) Take(name string) (any, bool) {
	return d.raw.Take(name)
}

// Rest exposes the keys not consumed so far.
func (d *Decoder) Rest() *Raw { return d.raw }

// Fail records err unless an earlier error is already recorded.
func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Decoder) Err() error { return d.err }

// Finish reports leftover keys and returns the first recorded error.
func (d *Decoder) Finish() error {
	if d.err == nil && d.raw.Len() > 0 {
		d.opts.logger.Warn("record received extra fields",
			"schema", d.schema,
			"path", d.path,
			"fields", d.raw.Keys(),
		)
	}
	return d.err
}

func (d *Decoder) missing(name string) {
	if d.opts.strict {
		d.Fail(&MissingFieldError{Schema: d.schema, Field: name, Path: d.path})
		return
	}
	d.opts.logger.Debug("required field missing", "schema", d.schema, "path", d.path, "field", name)
}

// Conv converts one raw value found at path.
type Conv[T any] func(d *Decoder, path string, v any) (T, error)

// Required reads a required field. A missing or null value leaves the zero
// value and, in strict mode, fails the decoder.
func Required[T any](d *Decoder, name string, conv Conv[T]) T {
	var zero T
	v, ok := d.raw.Take(name)
	if d.err != nil {
		return zero
	}
	if !ok || v == nil {
		d.missing(name)
		return zero
	}
	out, err := conv(d, d.FieldPath(name), v)
	if err != nil {
		d.Fail(err)
		return zero
	}
	return out
}

// OptField reads an optional scalar or record; absent and null yield nil.
func OptField[T any](d *Decoder, name string, conv Conv[T]) *T {
	v, ok := d.raw.Take(name)
	if d.err != nil || !ok || v == nil {
		return nil
	}
	out, err := conv(d, d.FieldPath(name), v)
	if err != nil {
		d.Fail(err)
		return nil
	}
	return &out
}

// OptValue reads an optional field whose type already has a natural empty
// value, such as a list or an untyped value.
func OptValue[T any](d *Decoder, name string, conv Conv[T]) T {
	var zero T
	v, ok := d.raw.Take(name)
	if d.err != nil || !ok || v == nil {
		return zero
	}
	out, err := conv(d, d.FieldPath(name), v)
	if err != nil {
		d.Fail(err)
		return zero
	}
	return out
}

func AsString(_ *Decoder, path string, v any) (string, error) { return toString(path, v) }

func AsInt(_ *Decoder, path string, v any) (int, error) { return toInt(path, v) }

func AsFloat(_ *Decoder, path string, v any) (float64, error) { return toFloat(path, v) }

func AsBool(_ *Decoder, path string, v any) (bool, error) { return toBool(path, v) }

func AsDate(_ *Decoder, path string, v any) (time.Time, error) { return toDate(path, v) }

func AsDateTime(_ *Decoder, path string, v any) (time.Time, error) { return toDateTime(path, v) }

func AsAny(_ *Decoder, _ string, v any) (any, error) { return v, nil }

// AsList converts a sequence element by element, keeping order.
func AsList[T any](conv Conv[T]) Conv[[]T] {
	return func(d *Decoder, path string, v any) ([]T, error) {
		items, ok := v.([]any)
		if !ok {
			return nil, mismatch(path, "list", v, nil)
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			elem, err := conv(d, elemPath(path, i), item)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	}
}

// AsMap converts every value of a string-keyed mapping.
func AsMap[T any](conv Conv[T]) Conv[map[string]T] {
	return func(d *Decoder, path string, v any) (map[string]T, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(path, "mapping", v, nil)
		}
		out := make(map[string]T, len(m))
		for k, item := range m {
			elem, err := conv(d, keyPath(path, k), item)
			if err != nil {
				return nil, err
			}
			out[k] = elem
		}
		return out, nil
	}
}

// AsRecord decodes a nested record with fn. The nested decoder shares the
// options of its parent.
func AsRecord[T any](schema string, fn func(*Decoder) T) Conv[T] {
	return func(d *Decoder, path string, v any) (T, error) {
		var zero T
		m, ok := v.(map[string]any)
		if !ok {
			return zero, mismatch(path, schema, v, nil)
		}
		c := d.child(schema, path, m)
		out := fn(c)
		if err := c.Finish(); err != nil {
			return zero, err
		}
		return out, nil
	}
}

// Decode runs fn over m as the root record of the named schema.
func Decode[T any](schema string, m map[string]any, fn func(*Decoder) T, opts ...Option) (T, error) {
	d := NewDecoder(schema, m, opts...)
	out := fn(d)
	if err := d.Finish(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
