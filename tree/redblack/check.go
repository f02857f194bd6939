package redblack

import (
	"errors"
)

// Check verifies the structure of the tree and returns an error describing the
// first broken property. This walks the entire tree and is meant for tests and
// diagnostics, not for normal operation.
func (t *Tree[K, V]) Check() error {
	if isRed(t.root) {
		return errors.New("root is red")
	}
	if !t.IsBST() {
		return errors.New("not in symmetric order")
	}
	if !t.IsSizeConsistent() {
		return errors.New("subtree sizes are not consistent")
	}
	if !t.IsRankConsistent() {
		return errors.New("ranks are not consistent")
	}
	if !t.Is23() {
		return errors.New("not a 2-3 tree")
	}
	if !t.IsBalanced() {
		return errors.New("black links are not balanced")
	}
	return nil
}

// IsValid reports if Check() finds no problems.
func (t *Tree[K, V]) IsValid() bool {
	return t.Check() == nil
}

// IsBST reports if an in-order walk yields strictly increasing keys.
func (t *Tree[K, V]) IsBST() bool {
	var prev *node[K, V]
	return t.walk(t.root, func(n *node[K, V]) bool {
		if prev != nil && t.compare(prev.key, n.key) >= 0 {
			return false
		}
		prev = n
		return true
	})
}

// IsSizeConsistent reports if every node's size equals 1 + the size of its children.
func (t *Tree[K, V]) IsSizeConsistent() bool {
	return sizeConsistent(t.root)
}

func sizeConsistent[K, V any](n *node[K, V]) bool {
	if n == nil {
		return true
	}
	if n.size != 1+sizeOf(n.left)+sizeOf(n.right) {
		return false
	}
	return sizeConsistent(n.left) && sizeConsistent(n.right)
}

// IsRankConsistent reports if Rank(Select(i)) == i for every rank and Select(Rank(k)) == k
// for every key.
func (t *Tree[K, V]) IsRankConsistent() bool {
	for i := 0; i < t.Size(); i++ {
		n := t.selectNode(i)
		if n == nil || t.rank(n.key) != i {
			return false
		}
	}
	i := 0
	return t.walk(t.root, func(n *node[K, V]) bool {
		r := t.rank(n.key)
		if r != i {
			return false
		}
		if s := t.selectNode(r); s == nil || t.compare(n.key, s.key) != 0 {
			return false
		}
		i++
		return true
	})
}

// Is23 reports if there are no red right links and no node is joined to two red links.
func (t *Tree[K, V]) Is23() bool {
	return t.is23(t.root)
}

func (t *Tree[K, V]) is23(n *node[K, V]) bool {
	if n == nil {
		return true
	}
	if isRed(n.right) {
		return false
	}
	if n != t.root && isRed(n) && isRed(n.left) {
		return false
	}
	return t.is23(n.left) && t.is23(n.right)
}

// IsBalanced reports if every path from the root to a nil link has the same number
// of black links.
func (t *Tree[K, V]) IsBalanced() bool {
	blacks := 0
	for n := t.root; n != nil; n = n.left {
		if !isRed(n) {
			blacks++
		}
	}
	return balanced(t.root, blacks)
}

// balanced reports if every path from "n" to a nil link has "blacks" black links.
func balanced[K, V any](n *node[K, V], blacks int) bool {
	if n == nil {
		return blacks == 0
	}
	if !isRed(n) {
		blacks--
	}
	return balanced(n.left, blacks) && balanced(n.right, blacks)
}
