package redblack

// Option holds a value or nothing. It is the value argument to Tree.Put(), where
// nothing means the key should be deleted. The zero value holds nothing.
type Option[V any] struct {
	value V
	ok    bool
}

// Some returns an Option holding "v".
func Some[V any](v V) Option[V] {
	return Option[V]{value: v, ok: true}
}

// None returns an Option holding nothing.
func None[V any]() Option[V] {
	return Option[V]{}
}

// Get returns the held value and true, or the zero value and false.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.ok
}

// IsNone reports if the Option holds nothing.
func (o Option[V]) IsNone() bool {
	return !o.ok
}
