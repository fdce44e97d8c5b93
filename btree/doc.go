/*
Package btree provides an insert-only, in-memory B-tree mapping ordered keys
to opaque payloads.

The tree is parameterized by its minimum degree t. Every node other than the
root holds between t-1 and 2t-1 entries, every internal node one child more
than it has entries, and all leaves sit at the same depth. The only way the
tree rebalances is by splitting a full node while descending for an insert,
which promotes the median entry into the parent. Height grows exclusively
when the root itself is full.

Supported operations:
  - Insert, which never fails for a well-formed key,
  - Search and SearchLinear for exact-match lookup,
  - Traverse, a node-major dump of all entries,
  - TraverseInOrder, ForEach and All for ascending key order.

There is no deletion, no range query and no persistence. A Tree is not safe
for concurrent use; callers must synchronize externally.

Lookup strategy is decided per node: nodes holding more entries than
Config.BinarySearchThreshold are probed with a binary search first. If the
probe misses, the same node is re-scanned linearly to find the child to
descend into. SearchLinear always uses the linear scan and is observably
equivalent to Search.

# Traversal order

Traverse appends a node's own entries before visiting any of its children.
For a tree of height 1 this is ascending order, for taller trees it is not:

	root [10 20], children [5 6 7] [12 17] [30]
	Traverse        → 10 20 5 6 7 12 17 30
	TraverseInOrder → 5 6 7 10 12 17 20 30

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'btree'
func tracer() tracing.Trace {
	return tracing.Select("btree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
