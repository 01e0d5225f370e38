package btree

import "errors"

var (
	// ErrKeyNotFound signals that a key to delete is not stored in the tree.
	// The tree is left unchanged.
	ErrKeyNotFound = errors.New("btree: key not found")
	// ErrInvalidOrder signals a tree order which cannot satisfy minimum occupancy.
	ErrInvalidOrder = errors.New("btree: invalid order")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrCapacityExceeded marks an attempt to split a node which is not full.
	// It is never returned to clients; the tree panics with it, as it reveals
	// a defect of the implementation.
	ErrCapacityExceeded = errors.New("btree: split of a node which is not full")
	// ErrInvalidTree is reported by Check for any violated structural invariant.
	ErrInvalidTree = errors.New("btree: invariant violated")
)
