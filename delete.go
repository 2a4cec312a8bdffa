package avl

import "fmt"

// Delete removes node n from the tree. It returns the number of rebalancing
// steps needed, where a double rotation counts as a single step. Other than
// for Insert, this may be more than one, as every ancestor of the deleted
// position may have to be fixed. Single rotations are reported one by one to
// the OnRotate hook.
//
// n must be a real node of t, otherwise ErrNodeNotInTree is returned and the
// tree is left unchanged. After deletion n is detached and must not be used
// with t again.
func (t *Tree[K, V]) Delete(n *Node[K, V]) (int, error) {
	if !t.owns(n) {
		return 0, ErrNodeNotInTree
	}
	t.size--
	start := t.unlink(n)
	n.detach()
	return t.rebalance(start, false), nil
}

// Remove deletes the node holding key, if present.
func (t *Tree[K, V]) Remove(key K) (int, error) {
	n := t.Search(key)
	if n == nil {
		return 0, fmt.Errorf("%w: no key %v", ErrNodeNotInTree, key)
	}
	return t.Delete(n)
}

// unlink performs a plain binary search tree deletion of n and returns the
// lowest node whose subtree changed, i.e. where rebalancing has to start.
// n's own links are left untouched.
func (t *Tree[K, V]) unlink(n *Node[K, V]) *Node[K, V] {
	start := n.parent
	switch {
	case !n.left.IsReal() && !n.right.IsReal():
		t.replaceChild(n.parent, n, sentinel[K, V](nil))
	case !n.right.IsReal():
		t.replaceChild(n.parent, n, n.left)
	case !n.left.IsReal():
		t.replaceChild(n.parent, n, n.right)
	default:
		// the successor has no left child, so removing it is one of the
		// simple cases above
		succ := t.Successor(n)
		t.unlink(succ)
		if succ.parent == n {
			start = succ
		} else {
			start = succ.parent
		}
		T().Debugf("avl: delete %v, relocating successor %v", n.key, succ.key)
		succ.left = n.left
		succ.left.parent = succ
		succ.right = n.right
		succ.right.parent = succ
		t.replaceChild(n.parent, n, succ)
		// the successor takes over the augmentation of n; the rebalancing walk
		// from start will recompute it against the previous height
		succ.height, succ.bf, succ.count = n.height, n.bf, n.count
	}
	return start
}
