package types

import "encoding/json"

// Optional is a JSON field that remembers whether it was present in the
// payload. The zero value is absent. A present JSON null is recorded
// separately so callers can tell "clear this" from "leave it alone".
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns a present Optional that carries an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the payload, null included.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field appeared as an explicit null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether a non-null value was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// ValueOr returns the supplied value, or fallback when absent or null.
func (o Optional[T]) ValueOr(fallback T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return fallback
}

// Ptr returns a pointer to the value, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// UnmarshalJSON is only invoked for keys present in the document.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON writes null for absent and null fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if v, ok := o.Get(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
