package redblack

import (
	"fmt"
)

// Min returns the smallest key. Returns ErrUnderflow if the tree is empty.
func (t *Tree[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, fmt.Errorf("Min(): %w", ErrUnderflow)
	}
	return minNode(t.root).key, nil
}

// Max returns the largest key. Returns ErrUnderflow if the tree is empty.
func (t *Tree[K, V]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, fmt.Errorf("Max(): %w", ErrUnderflow)
	}
	return maxNode(t.root).key, nil
}

// Floor returns the largest key less than or equal to "key". The bool is false
// if "key" is smaller than every key in the tree.
func (t *Tree[K, V]) Floor(key K) (K, bool, error) {
	var zero K
	if err := t.checkKey(key); err != nil {
		return zero, false, fmt.Errorf("Floor(): %w", err)
	}

	var best *node[K, V]
	for n := t.root; n != nil; {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			best = n
			n = n.right
		default:
			return n.key, true, nil
		}
	}
	if best == nil {
		return zero, false, nil
	}
	return best.key, true, nil
}

// Ceiling returns the smallest key greater than or equal to "key". The bool is false
// if "key" is larger than every key in the tree.
func (t *Tree[K, V]) Ceiling(key K) (K, bool, error) {
	var zero K
	if err := t.checkKey(key); err != nil {
		return zero, false, fmt.Errorf("Ceiling(): %w", err)
	}

	var best *node[K, V]
	for n := t.root; n != nil; {
		switch c := t.compare(key, n.key); {
		case c < 0:
			best = n
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.key, true, nil
		}
	}
	if best == nil {
		return zero, false, nil
	}
	return best.key, true, nil
}

// Select returns the key with 0-based rank "rank", the key that has exactly
// "rank" keys smaller than it. Returns ErrOutOfRange if rank is not in [0, Size()).
func (t *Tree[K, V]) Select(rank int) (K, error) {
	if rank < 0 || rank >= t.Size() {
		var zero K
		return zero, fmt.Errorf("Select(%d) on tree of size %d: %w", rank, t.Size(), ErrOutOfRange)
	}
	return t.selectNode(rank).key, nil
}

// selectNode returns the node of rank "rank" or nil if there is none.
func (t *Tree[K, V]) selectNode(rank int) *node[K, V] {
	for n := t.root; n != nil; {
		ls := sizeOf(n.left)
		switch {
		case rank < ls:
			n = n.left
		case rank > ls:
			rank -= ls + 1
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Rank returns the number of keys strictly less than "key". "key" does not need
// to be in the tree.
func (t *Tree[K, V]) Rank(key K) (int, error) {
	if err := t.checkKey(key); err != nil {
		return 0, fmt.Errorf("Rank(): %w", err)
	}
	return t.rank(key), nil
}

func (t *Tree[K, V]) rank(key K) int {
	r := 0
	for n := t.root; n != nil; {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			r += 1 + sizeOf(n.left)
			n = n.right
		default:
			return r + sizeOf(n.left)
		}
	}
	return r
}

// SizeRange returns the number of keys in [lo, hi]. Returns 0 if lo > hi.
func (t *Tree[K, V]) SizeRange(lo, hi K) (int, error) {
	if err := t.checkRange(lo, hi); err != nil {
		return 0, fmt.Errorf("SizeRange(): %w", err)
	}
	if t.compare(lo, hi) > 0 {
		return 0, nil
	}
	if t.get(hi) != nil {
		return t.rank(hi) - t.rank(lo) + 1, nil
	}
	return t.rank(hi) - t.rank(lo), nil
}

func (t *Tree[K, V]) checkRange(lo, hi K) error {
	if err := t.checkKey(lo); err != nil {
		return fmt.Errorf("lo: %w", err)
	}
	if err := t.checkKey(hi); err != nil {
		return fmt.Errorf("hi: %w", err)
	}
	return nil
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	t.walk(t.root, func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// KeysRange returns the keys in [lo, hi] in ascending order. Returns an empty
// slice if lo > hi.
func (t *Tree[K, V]) KeysRange(lo, hi K) ([]K, error) {
	if err := t.checkRange(lo, hi); err != nil {
		return nil, fmt.Errorf("KeysRange(): %w", err)
	}
	keys := []K{}
	if t.compare(lo, hi) > 0 {
		return keys, nil
	}
	t.walkRange(t.root, lo, hi, func(n *node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys, nil
}

// walk calls "f" on each node of the subtree at "n" in order. It stops and
// returns false once "f" returns false.
func (t *Tree[K, V]) walk(n *node[K, V], f func(n *node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return t.walk(n.left, f) && f(n) && t.walk(n.right, f)
}

// walkRange is walk() restricted to the keys in [lo, hi]. Subtrees entirely
// outside the range are not visited.
func (t *Tree[K, V]) walkRange(n *node[K, V], lo, hi K, f func(n *node[K, V]) bool) bool {
	if n == nil {
		return true
	}
	clo, chi := t.compare(lo, n.key), t.compare(hi, n.key)
	if clo < 0 && !t.walkRange(n.left, lo, hi, f) {
		return false
	}
	if clo <= 0 && chi >= 0 && !f(n) {
		return false
	}
	if chi > 0 {
		return t.walkRange(n.right, lo, hi, f)
	}
	return true
}
