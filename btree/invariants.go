package btree

import "fmt"

// Check validates structural tree invariants.
//
// It verifies occupancy bounds (t-1 ≤ n ≤ 2t-1 for every node except the
// root, which must hold at least one entry), key order within nodes and
// against the separators of the parent, uniform leaf depth, and the entry
// count. Equal keys are tolerated, as Insert does not deduplicate.
//
// This checker is intended for tests and debugging; it visits every node.
func (t *Tree[K, P]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		if t.height != 0 || t.count != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and len=0", ErrInvariant)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariant)
	}
	entries, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		tracer().Errorf("btree check failed: %v", err)
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	if entries != t.count {
		return fmt.Errorf("%w: entry count mismatch (%d != %d)", ErrInvariant, entries, t.count)
	}
	return nil
}

// checkNode validates the subtree at x. lo and hi, if non-nil, are the
// separator keys of the parent enclosing x.
func (t *Tree[K, P]) checkNode(x *node[K, P], isRoot bool, lo, hi *K) (entries int, height int, err error) {
	if x == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if err := t.checkSlots(x, isRoot); err != nil {
		return 0, 0, err
	}
	for i := 0; i < x.n; i++ {
		k := x.entries[i].Key
		if i > 0 && k < x.entries[i-1].Key {
			return 0, 0, fmt.Errorf("%w: keys not ascending at slot %d", ErrInvariant, i)
		}
		if lo != nil && k < *lo {
			return 0, 0, fmt.Errorf("%w: key at slot %d below parent separator", ErrInvariant, i)
		}
		if hi != nil && k > *hi {
			return 0, 0, fmt.Errorf("%w: key at slot %d above parent separator", ErrInvariant, i)
		}
	}
	if x.leaf {
		return x.n, 1, nil
	}
	totalEntries := x.n
	var childHeight int
	for i := 0; i <= x.n; i++ {
		clo, chi := lo, hi
		if i > 0 {
			clo = &x.entries[i-1].Key
		}
		if i < x.n {
			chi = &x.entries[i].Key
		}
		cEntries, cHeight, cErr := t.checkNode(x.children[i], false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalEntries += cEntries
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
	}
	return totalEntries, childHeight + 1, nil
}

// checkSlots validates occupancy and the fixed slot storage of a single node.
func (t *Tree[K, P]) checkSlots(x *node[K, P], isRoot bool) error {
	maxEntries, minEntries := t.cfg.maxEntries(), t.cfg.minEntries()
	if x.t != t.cfg.Degree {
		return fmt.Errorf("%w: node degree %d differs from tree degree %d", ErrInvariant, x.t, t.cfg.Degree)
	}
	if len(x.entries) != maxEntries {
		return fmt.Errorf("%w: entry storage has %d slots, expected %d", ErrInvariant, len(x.entries), maxEntries)
	}
	if x.n > maxEntries {
		return fmt.Errorf("%w: node holds %d entries, max is %d", ErrInvariant, x.n, maxEntries)
	}
	if isRoot && x.n < 1 {
		return fmt.Errorf("%w: root of non-empty tree holds no entries", ErrInvariant)
	}
	if !isRoot && x.n < minEntries {
		return fmt.Errorf("%w: node holds %d entries, min is %d", ErrInvariant, x.n, minEntries)
	}
	if x.leaf {
		if x.children != nil {
			return fmt.Errorf("%w: leaf has child storage", ErrInvariant)
		}
		return nil
	}
	if len(x.children) != maxEntries+1 {
		return fmt.Errorf("%w: child storage has %d slots, expected %d", ErrInvariant, len(x.children), maxEntries+1)
	}
	for i, c := range x.children {
		if i <= x.n && c == nil {
			return fmt.Errorf("%w: nil child at index %d", ErrInvariant, i)
		}
		if i > x.n && c != nil {
			return fmt.Errorf("%w: stale child in empty slot %d", ErrInvariant, i)
		}
	}
	return nil
}
