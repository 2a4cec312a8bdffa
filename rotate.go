package avl

// replaceChild re-links the child slot of parent holding old to point to x.
// A nil parent means old is the root.
func (t *Tree[K, V]) replaceChild(parent, old, x *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = x
	case parent.left == old:
		parent.left = x
	default:
		assert(parent.right == old, "replaceChild: old is not a child of parent")
		parent.right = x
	}
	x.parent = parent
}

// rotateRight lifts the left child y of x into the position of x.
//
//	      x            y
//	     / \          / \
//	    y   c  ==>   a   x
//	   / \              / \
//	  a   b            b   c
func (t *Tree[K, V]) rotateRight(x *Node[K, V]) {
	y := x.left
	assert(x.IsReal() && y.IsReal(), "rotateRight requires a real left child")
	parent := x.parent
	t.replaceChild(parent, x, y)
	x.left = y.right
	x.left.parent = x
	y.right = x
	x.parent = y
	x.recompute()
	y.recompute()
	if parent != nil {
		parent.recompute()
	}
	t.rotated(RotateRight, x, y)
}

// rotateLeft lifts the right child y of x into the position of x.
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	y := x.right
	assert(x.IsReal() && y.IsReal(), "rotateLeft requires a real right child")
	parent := x.parent
	t.replaceChild(parent, x, y)
	x.right = y.left
	x.right.parent = x
	y.left = x
	x.parent = y
	x.recompute()
	y.recompute()
	if parent != nil {
		parent.recompute()
	}
	t.rotated(RotateLeft, x, y)
}

func (t *Tree[K, V]) rotated(dir Direction, pivot, lifted *Node[K, V]) {
	T().Debugf("avl: rotate %s at %v, lifting %v", dir, pivot.key, lifted.key)
	if t.cfg.OnRotate != nil {
		t.cfg.OnRotate(Rotation[K]{Direction: dir, Pivot: pivot.key, Lifted: lifted.key})
	}
}

// fix restores the balance of a node with |bf| = 2 by a single or a double
// rotation. It returns the root of the rebalanced subtree.
func (t *Tree[K, V]) fix(n *Node[K, V]) *Node[K, V] {
	if n.bf > 0 {
		if n.left.bf < 0 { // left-right
			t.rotateLeft(n.left)
		}
		t.rotateRight(n)
	} else {
		if n.right.bf > 0 { // right-left
			t.rotateRight(n.right)
		}
		t.rotateLeft(n)
	}
	return n.parent
}

// rebalance walks upward from p, recomputing every ancestor and fixing
// balance violations. The walk stops at the first ancestor whose height did
// not change. If once is set, it also stops right after the first fix, which
// is sufficient after an insertion.
//
// Heights above the stopping point are still valid, but subtree counts are
// not; they are carried up to the root by recount.
//
// It returns the number of fixes applied; a double rotation counts as one.
func (t *Tree[K, V]) rebalance(p *Node[K, V], once bool) (fixes int) {
	// rotations recompute the parent of the rotated subtree, so its previous
	// height has to be remembered across a fix
	pre, carried := 0, false
	for p != nil {
		if !carried {
			pre = p.height
		}
		carried = false
		p.recompute()
		if p.bf >= -1 && p.bf <= 1 {
			if p.height == pre {
				t.recount(p.parent)
				return
			}
			p = p.parent
			continue
		}
		next := p.parent
		if next != nil {
			pre, carried = next.height, true
		}
		t.fix(p)
		fixes++
		if once {
			t.recount(next)
			return
		}
		p = next
	}
	return
}

// recount refreshes the subtree counts from n up to the root.
func (t *Tree[K, V]) recount(n *Node[K, V]) {
	for ; n != nil; n = n.parent {
		n.count = 1 + n.left.count + n.right.count
	}
}
