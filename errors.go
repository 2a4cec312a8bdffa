package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("avl: illegal arguments")
	// ErrDuplicateKey signals an insert of a key already present in the tree.
	ErrDuplicateKey = errors.New("avl: duplicate key")
	// ErrNodeNotInTree signals that a node handed to Delete or Split is not
	// a real node of the receiving tree.
	ErrNodeNotInTree = errors.New("avl: node not in tree")
	// ErrKeyOrder signals a join whose key ranges overlap or are out of order.
	ErrKeyOrder = errors.New("avl: keys out of order")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("avl: index out of bounds")
	// ErrCorrupted is reported by Check for a tree violating its invariants.
	ErrCorrupted = errors.New("avl: corrupted tree")
)
