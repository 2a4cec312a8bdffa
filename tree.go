package avl

import (
	"cmp"
	"fmt"
)

// Tree is an ordered dictionary mapping unique keys to values.
//
// A tree created by New or NewFunc is empty: its root is a sentinel and its
// size is 0.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *Node[K, V] // never nil
	size int
}

// Item is a key/value pair as produced by Items.
type Item[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty tree for keys with a natural order.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	t, err := NewFunc[K, V](Config[K]{Compare: cmp.Compare[K]})
	assert(err == nil, "New: default configuration is invalid")
	return t
}

// NewFunc creates an empty tree with a validated configuration.
func NewFunc[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg, root: sentinel[K, V](nil)}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// OnRotate installs a hook called after every rotation, replacing any
// previous hook. A nil hook removes it.
func (t *Tree[K, V]) OnRotate(hook func(Rotation[K])) {
	t.cfg.OnRotate = hook
}

// empty creates an empty tree sharing the configuration of t.
func (t *Tree[K, V]) empty() *Tree[K, V] {
	return &Tree[K, V]{cfg: t.cfg, root: sentinel[K, V](nil)}
}

// reset leaves t empty after its nodes have been moved elsewhere.
func (t *Tree[K, V]) reset() {
	t.root = sentinel[K, V](nil)
	t.size = 0
}

// Root returns the root node, which is a sentinel for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Size returns the number of keys in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return !t.root.IsReal()
}

// Height returns the height of the tree, −1 for an empty tree.
func (t *Tree[K, V]) Height() int {
	return t.root.height
}

// Search returns the node holding key, or nil if key is not present.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	n := t.root
	for n.IsReal() {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c == 0:
			return n
		case c > 0:
			n = n.right
		default:
			n = n.left
		}
	}
	return nil
}

// Get returns the value stored for key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := t.Search(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// position descends like Search. If key is not found, it returns the real
// node a new leaf for key has to be attached to. For an empty tree it returns
// nil.
func (t *Tree[K, V]) position(key K) *Node[K, V] {
	n := t.root
	for n.IsReal() {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c == 0:
			return n
		case c > 0:
			n = n.right
		default:
			n = n.left
		}
	}
	return n.parent
}

// Successor returns the real node with the next greater key, or nil if n
// holds the maximum.
func (t *Tree[K, V]) Successor(n *Node[K, V]) *Node[K, V] {
	if !n.IsReal() {
		return nil
	}
	if n.right.IsReal() {
		n = n.right
		for n.left.IsReal() {
			n = n.left
		}
		return n
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// Min returns the node with the smallest key, nil for an empty tree.
func (t *Tree[K, V]) Min() *Node[K, V] {
	if !t.root.IsReal() {
		return nil
	}
	n := t.root
	for n.left.IsReal() {
		n = n.left
	}
	return n
}

// Max returns the node with the greatest key, nil for an empty tree.
func (t *Tree[K, V]) Max() *Node[K, V] {
	if !t.root.IsReal() {
		return nil
	}
	n := t.root
	for n.right.IsReal() {
		n = n.right
	}
	return n
}

// Rank returns the number of keys less than key.
func (t *Tree[K, V]) Rank(key K) int {
	rank := 0
	n := t.root
	for n.IsReal() {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c == 0:
			return rank + n.left.count
		case c > 0:
			rank += n.left.count + 1
			n = n.right
		default:
			n = n.left
		}
	}
	return rank
}

// At returns the node at position i in key order.
func (t *Tree[K, V]) At(i int) (*Node[K, V], error) {
	if i < 0 || i >= t.size {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, t.size)
	}
	n := t.root
	for {
		switch l := n.left.count; {
		case i < l:
			n = n.left
		case i == l:
			return n, nil
		default:
			i -= l + 1
			n = n.right
		}
	}
}

// owns reports whether n is a real node of t.
func (t *Tree[K, V]) owns(n *Node[K, V]) bool {
	if !n.IsReal() {
		return false
	}
	for n.parent != nil {
		n = n.parent
	}
	return n == t.root
}

// Insert adds key with its value to the tree. It returns the number of
// rebalancing steps needed, which is either 0 or 1; a double rotation counts
// as a single step.
//
// Inserting a key already present is an error and leaves the tree unchanged.
func (t *Tree[K, V]) Insert(key K, value V) (int, error) {
	if t.Search(key) != nil {
		return 0, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	t.size++
	return t.attach(newNode(key, value)), nil
}

// attach links the fresh leaf n into the tree at the position of its key
// and rebalances.
func (t *Tree[K, V]) attach(n *Node[K, V]) int {
	if !t.root.IsReal() {
		t.root = n
		n.parent = nil
		return 0
	}
	parent := t.position(n.key)
	if t.cfg.Compare(n.key, parent.key) > 0 {
		parent.right = n
	} else {
		parent.left = n
	}
	n.parent = parent
	return t.rebalance(parent, true)
}
