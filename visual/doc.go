/*
Package visual renders the node structure of a B-tree for humans.

Render draws one branch per tree node, labelled with the keys the node holds.
Inner nodes and leaves are colored differently when color output is enabled.
Collect gathers shape statistics (node count, fill factor) of a tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package visual

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btree.visual'
func tracer() tracing.Trace {
	return tracing.Select("btree.visual")
}
