// Package tree holds the contracts shared by the ordered symbol tables in the
// subpackages, such as tree/redblack.
package tree

// SymbolTable is an ordered symbol table: a set of unique keys in a total
// order, each mapped to a value. Keyed methods return an error only when the
// key itself is invalid (see the implementation); a missing key is reported
// through the bool return or ignored, it is never an error.
type SymbolTable[K, V any] interface {
	// Get returns the value stored at "key" and true if the key exists.
	Get(key K) (V, bool, error)
	// Contains reports if "key" exists.
	Contains(key K) (bool, error)
	// Set stores "value" at "key", replacing any existing value.
	Set(key K, value V) error
	// Delete removes "key". Removing a key that does not exist is a no-op.
	Delete(key K) error
	// DeleteMin removes the smallest key. Errors if the table is empty.
	DeleteMin() error
	// DeleteMax removes the largest key. Errors if the table is empty.
	DeleteMax() error

	// Min returns the smallest key. Errors if the table is empty.
	Min() (K, error)
	// Max returns the largest key. Errors if the table is empty.
	Max() (K, error)
	// Floor returns the largest key <= "key" and true, or false if there is none.
	Floor(key K) (K, bool, error)
	// Ceiling returns the smallest key >= "key" and true, or false if there is none.
	Ceiling(key K) (K, bool, error)
	// Select returns the key of 0-based rank "rank".
	Select(rank int) (K, error)
	// Rank returns the number of keys strictly less than "key".
	Rank(key K) (int, error)

	// Size returns the number of keys.
	Size() int
	// SizeRange returns the number of keys in [lo, hi].
	SizeRange(lo, hi K) (int, error)
	// IsEmpty reports if the table holds no keys.
	IsEmpty() bool
	// Keys returns every key in ascending order.
	Keys() []K
	// KeysRange returns the keys in [lo, hi] in ascending order.
	KeysRange(lo, hi K) ([]K, error)
	// Height returns the height of the underlying tree, -1 when empty.
	Height() int

	// Check validates the internal structure, returning the first violation found.
	Check() error
}
