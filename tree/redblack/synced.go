package redblack

import (
	"sync"

	"github.com/johnsiilver/symtab/tree"
)

// Synced wraps a Tree so that it can be used by multiple goroutines. Reads take a
// shared lock and writes an exclusive lock, so each call is atomic.
type Synced[K, V any] struct {
	mu sync.RWMutex
	t  *Tree[K, V]
}

var _ tree.SymbolTable[int, int] = (*Synced[int, int])(nil)

// NewSynced wraps "t". "t" must not be used directly after this call.
func NewSynced[K, V any](t *Tree[K, V]) *Synced[K, V] {
	return &Synced[K, V]{t: t}
}

// Swap replaces the wrapped tree with "t" and returns the old tree.
func (s *Synced[K, V]) Swap(t *Tree[K, V]) *Tree[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.t
	s.t = t
	return old
}

// Get implements tree.SymbolTable.Get().
func (s *Synced[K, V]) Get(key K) (V, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Get(key)
}

// Contains implements tree.SymbolTable.Contains().
func (s *Synced[K, V]) Contains(key K) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Contains(key)
}

// Put implements Tree.Put().
func (s *Synced[K, V]) Put(key K, value Option[V]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Put(key, value)
}

// Set implements tree.SymbolTable.Set().
func (s *Synced[K, V]) Set(key K, value V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Set(key, value)
}

// Delete implements tree.SymbolTable.Delete().
func (s *Synced[K, V]) Delete(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Delete(key)
}

// DeleteMin implements tree.SymbolTable.DeleteMin().
func (s *Synced[K, V]) DeleteMin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.DeleteMin()
}

// DeleteMax implements tree.SymbolTable.DeleteMax().
func (s *Synced[K, V]) DeleteMax() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.DeleteMax()
}

// Min implements tree.SymbolTable.Min().
func (s *Synced[K, V]) Min() (K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Min()
}

// Max implements tree.SymbolTable.Max().
func (s *Synced[K, V]) Max() (K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Max()
}

// Floor implements tree.SymbolTable.Floor().
func (s *Synced[K, V]) Floor(key K) (K, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Floor(key)
}

// Ceiling implements tree.SymbolTable.Ceiling().
func (s *Synced[K, V]) Ceiling(key K) (K, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Ceiling(key)
}

// Select implements tree.SymbolTable.Select().
func (s *Synced[K, V]) Select(rank int) (K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Select(rank)
}

// Rank implements tree.SymbolTable.Rank().
func (s *Synced[K, V]) Rank(key K) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Rank(key)
}

// Size implements tree.SymbolTable.Size().
func (s *Synced[K, V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Size()
}

// SizeRange implements tree.SymbolTable.SizeRange().
func (s *Synced[K, V]) SizeRange(lo, hi K) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.SizeRange(lo, hi)
}

// IsEmpty implements tree.SymbolTable.IsEmpty().
func (s *Synced[K, V]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.IsEmpty()
}

// Keys implements tree.SymbolTable.Keys().
func (s *Synced[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Keys()
}

// KeysRange implements tree.SymbolTable.KeysRange().
func (s *Synced[K, V]) KeysRange(lo, hi K) ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.KeysRange(lo, hi)
}

// Height implements tree.SymbolTable.Height().
func (s *Synced[K, V]) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Height()
}

// Check implements tree.SymbolTable.Check().
func (s *Synced[K, V]) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Check()
}
