package avl

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Node is an element of a tree. Nodes are either real, carrying a key and a
// value, or sentinels, standing in for a missing child.
//
// Every real node owns exactly two children, which may be sentinels.
// Sentinels have no children and a height of −1.
type Node[K, V any] struct {
	key    K
	value  V
	height int // -1 for sentinels
	bf     int // height(left) − height(right)
	count  int // number of real nodes in the subtree
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

func sentinel[K, V any](parent *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{height: -1, parent: parent}
}

func newNode[K, V any](key K, value V) *Node[K, V] {
	n := &Node[K, V]{key: key, value: value}
	n.leafify()
	return n
}

// IsReal reports whether n carries a key, i.e. is not a sentinel.
func (n *Node[K, V]) IsReal() bool {
	return n != nil && n.height >= 0
}

// Key returns the key of n. For sentinels this is the zero value of K.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored with n.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces the value of a real node.
func (n *Node[K, V]) SetValue(value V) {
	assert(n.IsReal(), "SetValue called for sentinel")
	n.value = value
}

// Height returns the height of the subtree rooted at n (0 for a leaf, −1 for
// a sentinel).
func (n *Node[K, V]) Height() int {
	return n.height
}

// BalanceFactor returns height(left) − height(right).
func (n *Node[K, V]) BalanceFactor() int {
	return n.bf
}

// Left returns the left child, nil for sentinels.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child, nil for sentinels.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Parent returns the parent of n, nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// leafify turns n into a leaf with two fresh sentinel children.
func (n *Node[K, V]) leafify() {
	n.height = 0
	n.bf = 0
	n.count = 1
	n.left = sentinel(n)
	n.right = sentinel(n)
}

// recompute derives height, balance factor and count from the children,
// which have to be up to date already.
func (n *Node[K, V]) recompute() {
	n.height = 1 + max(n.left.height, n.right.height)
	n.bf = n.left.height - n.right.height
	n.count = 1 + n.left.count + n.right.count
}

// detach clears all links of a node which is no longer part of a tree.
func (n *Node[K, V]) detach() {
	n.left, n.right, n.parent = nil, nil, nil
}

func (n *Node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}
