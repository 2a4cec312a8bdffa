package avl

// Items returns all key/value pairs of the tree, sorted by key.
//
// The traversal is iterative and uses an explicit stack of at most
// Height()+1 nodes. It does not modify the tree.
func (t *Tree[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, t.size)
	stack := make([]*Node[K, V], 0, t.root.height+1)
	n := t.root
	for len(stack) > 0 || n.IsReal() {
		if n.IsReal() {
			stack = append(stack, n)
			n = n.left
			continue
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		items = append(items, Item[K, V]{Key: n.key, Value: n.value})
		n = n.right
	}
	return items
}

// Keys returns all keys of the tree in ascending order.
func (t *Tree[K, V]) Keys() []K {
	items := t.Items()
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	return keys
}
