package btree

import "cmp"

// NodeView is a read-only snapshot of a single tree node, handed to Walk.
type NodeView[K cmp.Ordered, P any] struct {
	Depth   int  // 0 for the root
	Index   int  // position among its siblings, 0 for the root
	Leaf    bool // true if the node has no children
	Entries []Entry[K, P]
}

// Walk visits every node in pre-order, parents before children and children
// from left to right. If fn returns false, the subtree below the current node
// is skipped.
//
// The Entries slice of a NodeView is a copy and may be retained.
func (t *Tree[K, P]) Walk(fn func(NodeView[K, P]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.walkNode(t.root, 0, 0, fn)
}

func (t *Tree[K, P]) walkNode(x *node[K, P], depth, index int, fn func(NodeView[K, P]) bool) {
	assert(x != nil, "walkNode called with nil node")
	view := NodeView[K, P]{
		Depth:   depth,
		Index:   index,
		Leaf:    x.leaf,
		Entries: append([]Entry[K, P](nil), x.entries[:x.n]...),
	}
	if !fn(view) || x.leaf {
		return
	}
	for i, c := range x.children[:x.n+1] {
		t.walkNode(c, depth+1, i, fn)
	}
}
