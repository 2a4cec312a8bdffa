package avl

import (
	"errors"
	"testing"
)

func TestCheckDetectsCorruption(t *testing.T) {
	cases := map[string]func(tree *Tree[int, string]){
		"height": func(tree *Tree[int, string]) {
			tree.Root().height = 7
		},
		"balance factor": func(tree *Tree[int, string]) {
			tree.Root().bf = 1
		},
		"order": func(tree *Tree[int, string]) {
			tree.Root().left.key = 100
		},
		"parent": func(tree *Tree[int, string]) {
			tree.Root().right.parent = nil
		},
		"size": func(tree *Tree[int, string]) {
			tree.size++
		},
		"count": func(tree *Tree[int, string]) {
			tree.Root().left.count = 5
		},
		"imbalance": func(tree *Tree[int, string]) {
			// hang a chain of two nodes below the leftmost leaf
			leaf := tree.Min()
			a := newNode(-2, "")
			b := newNode(-1, "")
			leaf.left, a.parent = a, leaf
			a.right, b.parent = b, a
			for n := b; n != nil; n = n.parent {
				n.recompute()
			}
			tree.size += 2
		},
	}
	for name, corrupt := range cases {
		tree := buildTree(t, 1, 2, 3, 4, 5, 6, 7)
		corrupt(tree)
		if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
			t.Errorf("%s: expected ErrCorrupted, got %v", name, err)
		}
	}
}
