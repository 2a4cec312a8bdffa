package avl

// Split partitions t at node n into a tree holding all keys less than the key
// of n and a tree holding all keys greater than it.
//
// n must be a real node of t, otherwise ErrNodeNotInTree is returned and the
// tree is left unchanged. All nodes of t are moved to the resulting trees,
// leaving t empty; n itself is detached. The resulting trees share the
// comparison function of t, but not its rotation hook. Rotations needed
// while splitting are reported to the hook of t.
//
// Split walks from n up to the root. Every ancestor contributes its subtree
// on the side opposite to the path, which is joined to the left or right
// result with the ancestor itself as separator. The sum of all these joins is
// O(log n).
func (t *Tree[K, V]) Split(n *Node[K, V]) (*Tree[K, V], *Tree[K, V], error) {
	if !t.owns(n) {
		return nil, nil, ErrNodeNotInTree
	}
	left, right := t.empty(), t.empty()
	left.root, right.root = n.left, n.right
	left.root.parent, right.root.parent = nil, nil
	child, p := n, n.parent
	n.detach()
	for p != nil {
		next := p.parent
		if p.right == child {
			lo := p.left
			lo.parent = nil
			left.link(lo, p, left.root)
		} else {
			hi := p.right
			hi.parent = nil
			right.link(right.root, p, hi)
		}
		T().Debugf("avl: split absorbed ancestor %v", p.key)
		child, p = p, next
	}
	left.size, right.size = left.root.count, right.root.count
	left.cfg.OnRotate, right.cfg.OnRotate = nil, nil
	t.reset()
	return left, right, nil
}
