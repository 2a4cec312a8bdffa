package avl

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

func TestDeletePromotesSuccessor(t *testing.T) {
	teardown := setupTracing(t, tracing.LevelDebug)
	defer teardown()
	//
	tree := buildTree(t, 10, 20, 30)
	n, err := tree.Delete(tree.Search(20))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no rebalancing, got %d", n)
	}
	mustCheck(t, tree)
	if tree.Root().Key() != 30 || tree.Root().Left().Key() != 10 {
		t.Errorf("expected successor 30 to be promoted to root")
	}
	if got := tree.Keys(); !keysEqual(got, []int{10, 30}) {
		t.Errorf("expected keys [10 30], have %v", got)
	}
}

func TestDeleteLeafAndOneChild(t *testing.T) {
	teardown := setupTracing(t, tracing.LevelDebug)
	defer teardown()
	//
	tree := buildTree(t, 20, 10, 30, 25)
	if _, err := tree.Delete(tree.Search(30)); err != nil { // one child
		t.Fatalf("delete failed: %v", err)
	}
	mustCheck(t, tree)
	if _, err := tree.Delete(tree.Search(10)); err != nil { // leaf
		t.Fatalf("delete failed: %v", err)
	}
	mustCheck(t, tree)
	if got := tree.Keys(); !keysEqual(got, []int{20, 25}) {
		t.Errorf("expected keys [20 25], have %v", got)
	}
}

func TestDeleteRebalancesRepeatedly(t *testing.T) {
	teardown := setupTracing(t, tracing.LevelDebug)
	defer teardown()
	//
	tree := buildTree(t, 10, 12, 4, 5, 8, 7, 9, 3, 6, 11, 2, 1)
	var rotations []Rotation[int]
	tree.OnRotate(func(r Rotation[int]) { rotations = append(rotations, r) })
	n, err := tree.Delete(tree.Search(8))
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rebalancing steps, got %d", n)
	}
	if len(rotations) != 3 {
		t.Errorf("expected 3 single rotations, got %v", rotations)
	}
	mustCheck(t, tree)
	if tree.Root().Key() != 5 {
		t.Errorf("expected 5 as new root, have %d", tree.Root().Key())
	}
	if got := tree.Keys(); !keysEqual(got, []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12}) {
		t.Errorf("unexpected keys %v", got)
	}
}

func TestDeleteRejectsForeignNodes(t *testing.T) {
	teardown := setupTracing(t, tracing.LevelDebug)
	defer teardown()
	//
	tree := buildTree(t, 1, 2, 3)
	other := buildTree(t, 1, 2, 3)
	if _, err := tree.Delete(other.Search(2)); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected ErrNodeNotInTree for node of other tree, got %v", err)
	}
	if _, err := tree.Delete(nil); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected ErrNodeNotInTree for nil, got %v", err)
	}
	if _, err := tree.Delete(tree.Root().Left().Left()); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected ErrNodeNotInTree for sentinel, got %v", err)
	}
	n := tree.Search(3)
	if _, err := tree.Delete(n); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := tree.Delete(n); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected ErrNodeNotInTree for deleted node, got %v", err)
	}
	mustCheck(t, tree)
	if tree.Size() != 2 {
		t.Errorf("expected size 2, is %d", tree.Size())
	}
}

func TestRemove(t *testing.T) {
	tree := buildTree(t, 3, 1, 2)
	if _, err := tree.Remove(2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := tree.Remove(2); !errors.Is(err, ErrNodeNotInTree) {
		t.Errorf("expected ErrNodeNotInTree for absent key, got %v", err)
	}
	mustCheck(t, tree)
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	teardown := setupTracing(t, tracing.LevelInfo)
	defer teardown()
	//
	tree := New[int, int]()
	for i := 0; i < 100; i++ {
		mustInsert(t, tree, i, i)
	}
	for i := 0; i < 100; i++ {
		key := (i * 37) % 100
		if _, err := tree.Delete(tree.Search(key)); err != nil {
			t.Fatalf("delete of %d failed: %v", key, err)
		}
		mustCheck(t, tree)
	}
	if tree.Size() != 0 || tree.Root().IsReal() || tree.Root().Parent() != nil {
		t.Errorf("expected tree to be empty again, size=%d", tree.Size())
	}
}
