package redblack

import (
	"context"
	"fmt"
	"iter"
)

// KV is a result for a Range.
type KV[K, V any] struct {
	// Key is the key.
	Key K
	// Value is the value.
	Value V
	// Err is the error if it has one.
	Err error
}

// Range streams every key/value pair in ascending key order. The channel is closed
// after the last pair. If "ctx" is cancelled first, a final KV holding ctx.Err() is
// sent before the channel closes. If not reading every value, cancel "ctx" and
// drain the channel to stop the goroutine. The tree must not be modified until the channel is closed.
func (t *Tree[K, V]) Range(ctx context.Context) chan KV[K, V] {
	ch := make(chan KV[K, V], 1)
	go func() {
		defer close(ch)
		t.walk(t.root, func(n *node[K, V]) bool {
			select {
			case <-ctx.Done():
				ch <- KV[K, V]{Err: ctx.Err()}
				return false
			case ch <- KV[K, V]{Key: n.key, Value: n.value}:
				return true
			}
		})
	}()
	return ch
}

// All returns an iterator over every key/value pair in ascending key order.
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.walk(t.root, func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// Ascend returns an iterator over the key/value pairs with keys in [lo, hi] in
// ascending key order. The tree must not be modified during iteration.
func (t *Tree[K, V]) Ascend(lo, hi K) (iter.Seq2[K, V], error) {
	if err := t.checkRange(lo, hi); err != nil {
		return nil, fmt.Errorf("Ascend(): %w", err)
	}
	return func(yield func(K, V) bool) {
		if t.compare(lo, hi) > 0 {
			return
		}
		t.walkRange(t.root, lo, hi, func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}, nil
}
