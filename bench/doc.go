/*
Package bench times bulk insertion and bulk lookup on B-trees.

A run inserts Count integer keys into a fresh tree, then looks every key up
again and verifies the hit. Timings are reported per phase. RunBaseline runs
the same workload on github.com/google/btree for comparison.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bench

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'btree.bench'
func tracer() tracing.Trace {
	return tracing.Select("btree.bench")
}
