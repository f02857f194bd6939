package redblack

const (
	red   = true
	black = false
)

// color is the color of the link from a node's parent to the node.
type color bool

// String implements fmt.Stringer.
func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

type node[K, V any] struct {
	key         K
	value       V
	color       color
	size        int // Nodes in the subtree rooted here, including this one.
	left, right *node[K, V]
}

// isRed reports if the link to "n" is red. nil links are black.
func isRed[K, V any](n *node[K, V]) bool {
	if n == nil {
		return false
	}
	return n.color == red
}

func sizeOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// rotateLeft makes the red right link of "h" lean left. Returns the new subtree root.
func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	x.size = h.size
	h.size = 1 + sizeOf(h.left) + sizeOf(h.right)
	return x
}

// rotateRight makes the red left link of "h" lean right. Returns the new subtree root.
func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	x.size = h.size
	h.size = 1 + sizeOf(h.left) + sizeOf(h.right)
	return x
}

// flipColors toggles the color of "h" and both its children. "h" must have two children.
func flipColors[K, V any](h *node[K, V]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

// moveRedLeft makes h.left or one of its children red.
// Assumes h is red and both h.left and h.left.left are black.
func moveRedLeft[K, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight makes h.right or one of its children red.
// Assumes h is red and both h.right and h.right.left are black.
func moveRedRight[K, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

// balance restores the left-leaning invariants at "h" and recomputes its size.
// The order of the three steps matters.
func balance[K, V any](h *node[K, V]) *node[K, V] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	h.size = 1 + sizeOf(h.left) + sizeOf(h.right)
	return h
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}
