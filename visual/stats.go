package visual

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/btreemap/btree"
)

// Stats describes the shape of a tree.
type Stats struct {
	Degree  int
	Height  int
	Nodes   int
	Leaves  int
	Entries int
}

// Collect walks tree and gathers its shape statistics.
func Collect[K cmp.Ordered, P any](tree *btree.Tree[K, P]) Stats {
	st := Stats{Degree: tree.Degree(), Height: tree.Height()}
	tree.Walk(func(v btree.NodeView[K, P]) bool {
		st.Nodes++
		st.Entries += len(v.Entries)
		if v.Leaf {
			st.Leaves++
		}
		return true
	})
	return st
}

// Fill returns the average node occupancy relative to the node capacity
// 2t-1, in the range [0, 1].
func (st Stats) Fill() float64 {
	if st.Nodes == 0 || st.Degree < 1 {
		return 0
	}
	return float64(st.Entries) / float64(st.Nodes*(2*st.Degree-1))
}

func (st Stats) String() string {
	return fmt.Sprintf("t=%d height=%d nodes=%d leaves=%d entries=%d fill=%.1f%%",
		st.Degree, st.Height, st.Nodes, st.Leaves, st.Entries, 100*st.Fill())
}
