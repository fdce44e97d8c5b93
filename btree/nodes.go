package btree

import "cmp"

// notFound is returned by binarySearchKeys if no slot holds the key.
const notFound = -1

// Entry is a key together with its payload. Entries are handed out by value.
type Entry[K cmp.Ordered, P any] struct {
	Key   K
	Value P
}

type node[K cmp.Ordered, P any] struct {
	t    int  // minimum degree, copied from the tree
	n    int  // number of valid entries, entries[:n]
	leaf bool // leaves have no children slice
	// entries has fixed length 2t-1; slots [n, 2t-1) hold zero values.
	entries []Entry[K, P]
	// children has fixed length 2t for internal nodes; slots [n+1, 2t) are nil.
	children []*node[K, P]
}

func newNode[K cmp.Ordered, P any](t int, leaf bool) *node[K, P] {
	x := &node[K, P]{
		t:       t,
		leaf:    leaf,
		entries: make([]Entry[K, P], 2*t-1),
	}
	if !leaf {
		x.children = make([]*node[K, P], 2*t)
	}
	return x
}

func (x *node[K, P]) full() bool {
	return x.n == 2*x.t-1
}

// search looks for key in the subtree rooted at x.
//
// If x holds more than threshold entries and forceLinear is not set, x is
// probed with a binary search. A miss of the probe cannot tell us where to
// descend, so x is scanned again linearly. The retry is local to x; the child
// is searched with the caller's forceLinear flag.
func (x *node[K, P]) search(key K, forceLinear bool, threshold int) (Entry[K, P], bool) {
	var i int
	if !forceLinear && x.n > threshold {
		if i = x.binarySearchKeys(key); i == notFound {
			i = x.scan(key)
		}
	} else {
		i = x.scan(key)
	}
	if i < x.n && x.entries[i].Key == key {
		return x.entries[i], true
	}
	if x.leaf || i >= len(x.children) {
		return Entry[K, P]{}, false
	}
	return x.children[i].search(key, forceLinear, threshold)
}

// scan returns the smallest slot index whose key is not less than key, or n.
func (x *node[K, P]) scan(key K) int {
	i := 0
	for i < x.n && x.entries[i].Key < key {
		i++
	}
	return i
}

// binarySearchKeys returns the left-most slot holding key, or notFound.
// Left-most matters only for equal keys sharing a node; it keeps the result
// identical to scan.
func (x *node[K, P]) binarySearchKeys(key K) int {
	low, high := 0, x.n
	for low < high {
		mid := int(uint(low+high) >> 1)
		if x.entries[mid].Key < key {
			low = mid + 1
		} else {
			high = mid
		}
	}
	if low < x.n && x.entries[low].Key == key {
		return low
	}
	return notFound
}

// insertNonFull inserts an entry into the subtree rooted at x, which must not
// be full. Full children on the way down are split before descending.
func (x *node[K, P]) insertNonFull(key K, value P) {
	assert(!x.full(), "insertNonFull called on a full node")
	i := x.n - 1
	if x.leaf {
		for i >= 0 && x.entries[i].Key > key {
			x.entries[i+1] = x.entries[i]
			i--
		}
		x.entries[i+1] = Entry[K, P]{Key: key, Value: value}
		x.n++
		return
	}
	for i >= 0 && x.entries[i].Key > key {
		i--
	}
	i++ // key belongs into children[i]
	if x.children[i].full() {
		x.splitChild(i, i)
		// the promoted median now sits at entries[i]
		if x.entries[i].Key < key {
			i++
		}
	}
	x.children[i].insertNonFull(key, value)
}

// splitChild splits the full child y = children[childIndex] into y and a new
// right sibling z, each holding t-1 entries. The median of y is promoted into
// x at entries[pos] and z is linked at children[pos+1].
func (x *node[K, P]) splitChild(pos, childIndex int) {
	t := x.t
	y := x.children[childIndex]
	assert(y.full(), "splitChild called for a non-full child")
	assert(!x.full(), "splitChild called on a full parent")

	z := newNode[K, P](t, y.leaf)
	copy(z.entries[:t-1], y.entries[t:])
	clear(y.entries[t:])
	z.n = t - 1
	if !y.leaf {
		copy(z.children[:t], y.children[t:])
		clear(y.children[t:])
	}
	median := y.entries[t-1]
	y.entries[t-1] = Entry[K, P]{}
	y.n = t - 1

	copy(x.children[pos+2:x.n+2], x.children[pos+1:x.n+1])
	x.children[pos+1] = z
	copy(x.entries[pos+1:x.n+1], x.entries[pos:x.n])
	x.entries[pos] = median
	x.n++
}

// traverse appends x's own entries, then the entries of every child subtree
// from left to right. This is node-major order, not key order.
func (x *node[K, P]) traverse(out []Entry[K, P]) []Entry[K, P] {
	out = append(out, x.entries[:x.n]...)
	if !x.leaf {
		for _, c := range x.children[:x.n+1] {
			out = c.traverse(out)
		}
	}
	return out
}

// inorder calls yield for every entry of the subtree in ascending key order.
// It returns false if yield asked to stop.
func (x *node[K, P]) inorder(yield func(Entry[K, P]) bool) bool {
	for i := 0; i < x.n; i++ {
		if !x.leaf && !x.children[i].inorder(yield) {
			return false
		}
		if !yield(x.entries[i]) {
			return false
		}
	}
	if !x.leaf {
		return x.children[x.n].inorder(yield)
	}
	return true
}
