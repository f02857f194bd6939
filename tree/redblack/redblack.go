/*
Package redblack provides an ordered symbol table backed by a left-leaning red-black
binary search tree. Based on the description at:
https://www.cs.princeton.edu/~rs/talks/LLRB/LLRB.pdf

The tree keeps every root to leaf path within 2*log2(n) links, so point operations
(Get, Set, Delete, Rank, Select, Floor, Ceiling) are O(log n) and range operations
are O(log n + k) for k results.

Every node stores the size of its subtree, which lets Rank() and Select() answer
order statistic queries without walking the tree.

Usage:
	t := redblack.New[string, int]()

	for i, k := range strings.Fields("S E A R C H E X A M P L E") {
		if err := t.Set(k, i); err != nil {
			// Do something
		}
	}

	v, ok, err := t.Get("E") // 12, true, nil
	fl, ok, err := t.Floor("G") // "E", true, nil
	keys := t.Keys() // [A C E H L M P R S X]

Storing None() for a key deletes it:
	t.Put("E", redblack.None[int]())

A Tree is not safe for concurrent use. Use Synced if multiple goroutines need access.
*/
package redblack

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"reflect"

	"github.com/johnsiilver/symtab/tree"
)

var (
	// ErrUnderflow is returned when removing or reading the min/max of an empty tree.
	ErrUnderflow = errors.New("symbol table underflow")
	// ErrOutOfRange is returned when Select() is called with a rank outside [0, Size()).
	ErrOutOfRange = errors.New("rank out of range")
	// ErrNilKey is returned when a keyed operation receives a nil key.
	ErrNilKey = errors.New("nil key")
)

// Tree is an ordered symbol table. Create with New(), NewFunc() or NewBytes().
type Tree[K, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int

	// nillable is set when K can hold nil, which means keys must be checked.
	nillable bool
}

var _ tree.SymbolTable[int, int] = (*Tree[int, int])(nil)

// New is the constructor for a Tree whose keys have a natural order.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// NewFunc is the constructor for a Tree ordered by "compare", which must return
// a negative number when a < b, 0 when a == b and a positive number when a > b.
// "compare" must be a total order. Panics if compare is nil.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("redblack: NewFunc() called with a nil compare func")
	}
	return &Tree[K, V]{compare: compare, nillable: canBeNil[K]()}
}

// NewBytes is the constructor for a Tree with []byte keys in lexicographic order.
// A nil key is rejected, an empty non-nil key is valid.
func NewBytes[V any]() *Tree[[]byte, V] {
	return NewFunc[[]byte, V](bytes.Compare)
}

// canBeNil reports if the type K can hold a nil value.
func canBeNil[K any]() bool {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// checkKey returns ErrNilKey if "k" is nil.
func (t *Tree[K, V]) checkKey(k K) error {
	if !t.nillable {
		return nil
	}
	v := reflect.ValueOf(any(k))
	if !v.IsValid() {
		return ErrNilKey
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return ErrNilKey
		}
	}
	return nil
}

// Size returns the number of keys in the tree. O(1).
func (t *Tree[K, V]) Size() int {
	return sizeOf(t.root)
}

// IsEmpty reports if the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// Height returns the number of links on the longest path from the root to a leaf.
// An empty tree has a height of -1 and a single node tree a height of 0.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}

// Clear removes all keys from the tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
}

// Get returns the value stored at "key". The bool is false if the key does not exist.
func (t *Tree[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if err := t.checkKey(key); err != nil {
		return zero, false, fmt.Errorf("Get(): %w", err)
	}
	n := t.get(key)
	if n == nil {
		return zero, false, nil
	}
	return n.value, true, nil
}

func (t *Tree[K, V]) get(key K) *node[K, V] {
	for n := t.root; n != nil; {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports if "key" is stored in the tree.
func (t *Tree[K, V]) Contains(key K) (bool, error) {
	if err := t.checkKey(key); err != nil {
		return false, fmt.Errorf("Contains(): %w", err)
	}
	return t.get(key) != nil, nil
}

// Set stores "value" at "key". Same as Put(key, Some(value)).
func (t *Tree[K, V]) Set(key K, value V) error {
	if err := t.checkKey(key); err != nil {
		return fmt.Errorf("Set(): %w", err)
	}
	t.set(key, value)
	return nil
}

// Put stores the value held in "value" at "key", replacing an existing value.
// If "value" is None(), the key is deleted instead.
func (t *Tree[K, V]) Put(key K, value Option[V]) error {
	if err := t.checkKey(key); err != nil {
		return fmt.Errorf("Put(): %w", err)
	}
	v, ok := value.Get()
	if !ok {
		t.delete(key)
		return nil
	}
	t.set(key, v)
	return nil
}

func (t *Tree[K, V]) set(key K, value V) {
	t.root = t.put(t.root, key, value)
	t.root.color = black
}

// put inserts key/value into the subtree at "h" and returns the new subtree root.
func (t *Tree[K, V]) put(h *node[K, V], key K, value V) *node[K, V] {
	if h == nil {
		return &node[K, V]{key: key, value: value, color: red, size: 1}
	}

	switch c := t.compare(key, h.key); {
	case c < 0:
		h.left = t.put(h.left, key, value)
	case c > 0:
		h.right = t.put(h.right, key, value)
	default:
		h.value = value
	}
	return balance(h)
}

// DeleteMin removes the smallest key. Returns ErrUnderflow if the tree is empty.
func (t *Tree[K, V]) DeleteMin() error {
	if t.root == nil {
		return fmt.Errorf("DeleteMin(): %w", ErrUnderflow)
	}

	// If both children of root are black, set root to red.
	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = deleteMin(t.root)
	if t.root != nil {
		t.root.color = black
	}
	return nil
}

// deleteMin removes the smallest key in the subtree at "h".
func deleteMin[K, V any](h *node[K, V]) *node[K, V] {
	if h.left == nil {
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left = deleteMin(h.left)
	return balance(h)
}

// DeleteMax removes the largest key. Returns ErrUnderflow if the tree is empty.
func (t *Tree[K, V]) DeleteMax() error {
	if t.root == nil {
		return fmt.Errorf("DeleteMax(): %w", ErrUnderflow)
	}

	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = deleteMax(t.root)
	if t.root != nil {
		t.root.color = black
	}
	return nil
}

// deleteMax removes the largest key in the subtree at "h".
func deleteMax[K, V any](h *node[K, V]) *node[K, V] {
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if h.right == nil {
		return nil
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	h.right = deleteMax(h.right)
	return balance(h)
}

// Delete removes "key" from the tree. Deleting a key that doesn't exist does nothing.
func (t *Tree[K, V]) Delete(key K) error {
	if err := t.checkKey(key); err != nil {
		return fmt.Errorf("Delete(): %w", err)
	}
	t.delete(key)
	return nil
}

func (t *Tree[K, V]) delete(key K) {
	// The descent below restructures the tree, so it must only start when it will find the key.
	if t.get(key) == nil {
		return
	}

	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = t.deleteNode(t.root, key)
	if t.root != nil {
		t.root.color = black
	}
}

// deleteNode removes "key" from the subtree at "h". "key" must be in the subtree.
func (t *Tree[K, V]) deleteNode(h *node[K, V], key K) *node[K, V] {
	if t.compare(key, h.key) < 0 {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = t.deleteNode(h.left, key)
		return balance(h)
	}

	if isRed(h.left) {
		h = rotateRight(h)
	}
	if t.compare(key, h.key) == 0 && h.right == nil {
		return nil
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	if t.compare(key, h.key) == 0 {
		// Replace h with its successor, then remove the successor from the right subtree.
		succ := minNode(h.right)
		h.key, h.value = succ.key, succ.value
		h.right = deleteMin(h.right)
	} else {
		h.right = t.deleteNode(h.right, key)
	}
	return balance(h)
}
