package avl

import "fmt"

// Check validates the structural invariants of the tree:
// search tree order, cached heights, balance factors and counts, parent
// links and the size counter.
//
// Check is intended for tests and debugging; it visits every node.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrCorrupted)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrCorrupted, t.size, count)
	}
	return nil
}

// checkNode validates the subtree at n, whose keys have to be within the
// exclusive bounds lo and hi (nil meaning unbounded). It returns the number
// of real nodes.
func (t *Tree[K, V]) checkNode(n, lo, hi *Node[K, V]) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrCorrupted)
	}
	if !n.IsReal() {
		if n.height != -1 {
			return 0, fmt.Errorf("%w: sentinel with height %d", ErrCorrupted, n.height)
		}
		if n.left != nil || n.right != nil {
			return 0, fmt.Errorf("%w: sentinel with children", ErrCorrupted)
		}
		return 0, nil
	}
	if lo != nil && t.cfg.Compare(lo.key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorrupted, n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrCorrupted, n.key, hi.key)
	}
	for _, child := range []*Node[K, V]{n.left, n.right} {
		if child == nil {
			return 0, fmt.Errorf("%w: real node %v with nil child", ErrCorrupted, n.key)
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below %v", ErrCorrupted, n.key)
		}
	}
	lcount, err := t.checkNode(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	rcount, err := t.checkNode(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(n.left.height, n.right.height); n.height != h {
		return 0, fmt.Errorf("%w: height of %v is %d, should be %d", ErrCorrupted, n.key, n.height, h)
	}
	if bf := n.left.height - n.right.height; n.bf != bf {
		return 0, fmt.Errorf("%w: balance factor of %v is %d, should be %d", ErrCorrupted, n.key, n.bf, bf)
	}
	if n.bf < -1 || n.bf > 1 {
		return 0, fmt.Errorf("%w: node %v out of balance (%d)", ErrCorrupted, n.key, n.bf)
	}
	if c := 1 + lcount + rcount; n.count != c {
		return 0, fmt.Errorf("%w: count of %v is %d, should be %d", ErrCorrupted, n.key, n.count, c)
	}
	return 1 + lcount + rcount, nil
}
