package avl

import "fmt"

// Join merges other into t, using key and value as the separator. All keys of
// t have to be less than key and all keys of other greater than key,
// otherwise ErrKeyOrder is returned and neither tree is changed.
//
// Key order is decided by the comparison function of t only. Both trees are
// expected to be configured with the same ordering; the configuration of
// other, including a rotation hook, has no effect on the result.
//
// The nodes of other are moved into t, leaving other empty. Join returns the
// absolute difference of the two heights before joining, plus one. The cost
// of a join is proportional to this number.
func (t *Tree[K, V]) Join(other *Tree[K, V], key K, value V) (int, error) {
	if other == nil || other == t {
		return 0, fmt.Errorf("%w: cannot join tree with nil or itself", ErrIllegalArguments)
	}
	if m := t.Max(); m != nil && t.cfg.Compare(m.key, key) >= 0 {
		return 0, fmt.Errorf("%w: maximum %v of left tree not less than %v", ErrKeyOrder, m.key, key)
	}
	if m := other.Min(); m != nil && t.cfg.Compare(key, m.key) >= 0 {
		return 0, fmt.Errorf("%w: minimum %v of right tree not greater than %v", ErrKeyOrder, m.key, key)
	}
	diff := abs(t.root.height-other.root.height) + 1
	size := t.size + other.size + 1
	hi := other.root
	other.reset()
	t.link(t.root, newNode(key, value), hi)
	t.size = size
	return diff, nil
}

// link makes t the join of the subtrees lo and hi with separator mid, with
// keys(lo) < mid < keys(hi). lo and hi must be roots, i.e. have no parent.
// mid is turned into a fresh leaf before it is spliced in.
//
// The separator is inserted where the spine of the taller tree, on the side
// facing the shorter one, first reaches the shorter tree's height. Then the
// usual rebalancing walk runs from there up to the root.
func (t *Tree[K, V]) link(lo, mid, hi *Node[K, V]) {
	mid.parent = nil
	mid.leafify()
	switch {
	case !lo.IsReal() && !hi.IsReal():
		t.root = mid
		return
	case !hi.IsReal():
		t.root = lo
		t.attach(mid)
		return
	case !lo.IsReal():
		t.root = hi
		t.attach(mid)
		return
	}
	var parent *Node[K, V]
	if lo.height <= hi.height {
		t.root = hi
		b := hi
		for b.height > lo.height {
			b = b.left
		}
		parent = b.parent
		T().Debugf("avl: join %v into left spine at height %d", mid.key, b.height)
		mid.left, mid.right = lo, b
		if parent == nil {
			t.root = mid
		} else {
			parent.left = mid
		}
	} else {
		t.root = lo
		s := lo
		for s.height > hi.height {
			s = s.right
		}
		parent = s.parent
		T().Debugf("avl: join %v into right spine at height %d", mid.key, s.height)
		mid.left, mid.right = s, hi
		if parent == nil {
			t.root = mid
		} else {
			parent.right = mid
		}
	}
	mid.parent = parent
	mid.left.parent = mid
	mid.right.parent = mid
	mid.recompute()
	t.rebalance(parent, false)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
