package btree

import "fmt"

const (
	// MinOrder is the smallest order able to satisfy minimum occupancy for
	// both variants.
	MinOrder = 3
	// DefaultOrder is used for a configured order of 0.
	DefaultOrder = 4
)

// Variant selects between a plain B-tree and a B+tree with linked leaves.
type Variant uint8

const (
	// Classic stores each key once; internal keys are data.
	Classic Variant = iota
	// Linked stores all keys in leaves; internal keys are routing copies and
	// leaves form a doubly linked list.
	Linked
)

func (v Variant) String() string {
	switch v {
	case Classic:
		return "classic"
	case Linked:
		return "linked"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant maps "classic" and "linked" (also "b" and "b+") to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "classic", "b", "btree":
		return Classic, nil
	case "linked", "b+", "bplus", "bptree":
		return Linked, nil
	}
	return Classic, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Config configures a tree.
type Config[K any] struct {
	// Order is the maximum number of keys a node may hold before it is split.
	// Between public operations nodes hold at most Order-1 keys. An order of 0
	// selects DefaultOrder.
	Order int
	// Compare orders keys. It must be a total order and must not change
	// during the lifetime of the tree.
	Compare Comparator[K]
	// Variant selects the tree flavour.
	Variant Variant
}

// normalized returns cfg with defaults applied to unset fields.
func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order %d, must be at least %d", ErrInvalidOrder, cfg.Order, MinOrder)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Variant != Classic && cfg.Variant != Linked {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, cfg.Variant)
	}
	return nil
}

// minInnerKeys is ceil(m/2)-1.
func (cfg Config[K]) minInnerKeys() int {
	return (cfg.Order+1)/2 - 1
}

// minLeafKeys is the size of the smaller half of a leaf split.
func (cfg Config[K]) minLeafKeys() int {
	if cfg.Variant == Linked {
		return cfg.Order / 2
	}
	return cfg.minInnerKeys()
}
