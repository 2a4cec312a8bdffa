package avl

import "fmt"

// Direction tells which way a rotation turned.
type Direction int8

const (
	// RotateLeft lifts the right child of the pivot.
	RotateLeft Direction = -1
	// RotateRight lifts the left child of the pivot.
	RotateRight Direction = 1
)

func (d Direction) String() string {
	if d == RotateLeft {
		return "left"
	}
	return "right"
}

// Rotation describes a single rotation performed while rebalancing.
// Pivot is the key of the node moving down, Lifted the key of the node
// taking its place.
type Rotation[K any] struct {
	Direction Direction
	Pivot     K
	Lifted    K
}

// Config configures a tree.
type Config[K any] struct {
	// Compare orders keys. It must return a negative number, zero or a
	// positive number if a is less than, equal to or greater than b.
	Compare func(a, b K) int
	// OnRotate, if set, is called after every single rotation.
	OnRotate func(Rotation[K])
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	return nil
}
