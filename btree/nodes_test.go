package btree

import (
	"slices"
	"testing"
)

// makeLeaf builds a leaf of degree t holding keys, which must be ascending.
func makeLeaf(t int, keys ...int) *node[int, int] {
	x := newNode[int, int](t, true)
	for i, k := range keys {
		x.entries[i] = Entry[int, int]{Key: k, Value: k * 10}
	}
	x.n = len(keys)
	return x
}

func nodeKeys(x *node[int, int]) []int {
	return keysOf(x.entries[:x.n])
}

func TestNewNodeSlotCapacity(t *testing.T) {
	leaf := newNode[int, int](3, true)
	if len(leaf.entries) != 5 || leaf.children != nil {
		t.Fatalf("leaf: expected 5 entry slots and no child slots, got %d/%d",
			len(leaf.entries), len(leaf.children))
	}
	inner := newNode[int, int](3, false)
	if len(inner.entries) != 5 || len(inner.children) != 6 {
		t.Fatalf("inner: expected 5/6 slots, got %d/%d", len(inner.entries), len(inner.children))
	}
}

func TestBinarySearchKeys(t *testing.T) {
	x := makeLeaf(4, 2, 4, 6, 8, 10, 12, 14)
	for i, k := range []int{2, 4, 6, 8, 10, 12, 14} {
		if got := x.binarySearchKeys(k); got != i {
			t.Fatalf("binarySearchKeys(%d) = %d, want %d", k, got, i)
		}
	}
	for _, k := range []int{1, 3, 9, 15} {
		if got := x.binarySearchKeys(k); got != notFound {
			t.Fatalf("binarySearchKeys(%d) = %d, want notFound", k, got)
		}
	}
	empty := makeLeaf(4)
	if got := empty.binarySearchKeys(1); got != notFound {
		t.Fatalf("binarySearchKeys on empty node = %d", got)
	}
}

func TestBinarySearchKeysFindsLeftmostDuplicate(t *testing.T) {
	x := makeLeaf(4, 1, 3, 3, 3, 3, 3, 9)
	if got := x.binarySearchKeys(3); got != 1 {
		t.Fatalf("expected left-most slot 1, got %d", got)
	}
	if x.binarySearchKeys(3) != x.scan(3) {
		t.Fatalf("binary and linear index differ for duplicates")
	}
}

func TestInsertNonFullLeafKeepsOrder(t *testing.T) {
	x := makeLeaf(3, 10, 30)
	x.insertNonFull(20, 200)
	x.insertNonFull(5, 50)
	x.insertNonFull(40, 400)
	if got := nodeKeys(x); !slices.Equal(got, []int{5, 10, 20, 30, 40}) {
		t.Fatalf("unexpected leaf keys %v", got)
	}
	if x.entries[2].Value != 200 {
		t.Fatalf("value not moved with key: %v", x.entries[2])
	}
}

func TestInsertNonFullPanicsOnFullNode(t *testing.T) {
	x := makeLeaf(2, 1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected insertNonFull on full node to panic")
		}
	}()
	x.insertNonFull(4, 40)
}

func TestSplitLeafChild(t *testing.T) {
	parent := newNode[int, int](3, false)
	parent.children[0] = makeLeaf(3, 1, 2, 3, 4, 5)
	parent.splitChild(0, 0)

	if parent.n != 1 || parent.entries[0].Key != 3 || parent.entries[0].Value != 30 {
		t.Fatalf("expected median 3 promoted, parent holds %v", parent.entries[:parent.n])
	}
	y, z := parent.children[0], parent.children[1]
	if !slices.Equal(nodeKeys(y), []int{1, 2}) || !slices.Equal(nodeKeys(z), []int{4, 5}) {
		t.Fatalf("unexpected halves %v / %v", nodeKeys(y), nodeKeys(z))
	}
	if !z.leaf {
		t.Fatalf("sibling of a leaf must be a leaf")
	}
	for i := y.n; i < len(y.entries); i++ {
		if y.entries[i] != (Entry[int, int]{}) {
			t.Fatalf("slot %d of split node not cleared: %v", i, y.entries[i])
		}
	}
}

func TestSplitMiddleChildShiftsSiblings(t *testing.T) {
	parent := newNode[int, int](2, false)
	parent.entries[0] = Entry[int, int]{Key: 10}
	parent.entries[1] = Entry[int, int]{Key: 20}
	parent.n = 2
	a, b, c := makeLeaf(2, 1, 2), makeLeaf(2, 11, 12, 13), makeLeaf(2, 21)
	parent.children[0], parent.children[1], parent.children[2] = a, b, c

	parent.splitChild(1, 1)

	if got := nodeKeys(parent); !slices.Equal(got, []int{10, 12, 20}) {
		t.Fatalf("unexpected parent keys %v", got)
	}
	want := [][]int{{1, 2}, {11}, {13}, {21}}
	for i, w := range want {
		if got := nodeKeys(parent.children[i]); !slices.Equal(got, w) {
			t.Fatalf("child %d: got %v, want %v", i, got, w)
		}
	}
	if parent.children[0] != a || parent.children[1] != b || parent.children[3] != c {
		t.Fatalf("children not shifted correctly")
	}
}

func TestSplitInternalChildMovesChildren(t *testing.T) {
	y := newNode[int, int](2, false)
	for i, k := range []int{10, 20, 30} {
		y.entries[i] = Entry[int, int]{Key: k}
	}
	y.n = 3
	leaves := []*node[int, int]{makeLeaf(2, 1), makeLeaf(2, 15), makeLeaf(2, 25), makeLeaf(2, 35)}
	copy(y.children, leaves)

	parent := newNode[int, int](2, false)
	parent.children[0] = y
	parent.splitChild(0, 0)

	z := parent.children[1]
	if z.leaf || z.n != 1 || z.entries[0].Key != 30 {
		t.Fatalf("unexpected right sibling %v", nodeKeys(z))
	}
	if z.children[0] != leaves[2] || z.children[1] != leaves[3] {
		t.Fatalf("upper children not moved to sibling")
	}
	if y.children[2] != nil || y.children[3] != nil {
		t.Fatalf("moved child slots not cleared")
	}
	if y.children[0] != leaves[0] || y.children[1] != leaves[1] {
		t.Fatalf("lower children must stay")
	}
}

func TestSearchAboveAndBelowThresholdAgree(t *testing.T) {
	// a leaf with 599 entries is probed by binary search at the default
	// threshold of 512, one with 501 entries is scanned linearly
	for _, size := range []int{501, 599} {
		x := newNode[int, int](300, true)
		for i := 0; i < size; i++ {
			x.entries[i] = Entry[int, int]{Key: 2 * i, Value: i}
		}
		x.n = size
		for k := -1; k <= 2*size; k++ {
			a, okA := x.search(k, false, DefaultBinarySearchThreshold)
			b, okB := x.search(k, true, DefaultBinarySearchThreshold)
			if a != b || okA != okB {
				t.Fatalf("size %d, key %d: binary %v/%v, linear %v/%v", size, k, a, okA, b, okB)
			}
			if okA != (k >= 0 && k%2 == 0 && k < 2*size) {
				t.Fatalf("size %d, key %d: unexpected hit=%v", size, k, okA)
			}
		}
	}
}

func TestSearchFallbackDescendsIntoCorrectChild(t *testing.T) {
	// threshold 1 forces the binary probe on the root holding 2 keys
	parent := newNode[int, int](2, false)
	parent.entries[0] = Entry[int, int]{Key: 10, Value: 100}
	parent.entries[1] = Entry[int, int]{Key: 20, Value: 200}
	parent.n = 2
	parent.children[0] = makeLeaf(2, 1, 5)
	parent.children[1] = makeLeaf(2, 12, 15)
	parent.children[2] = makeLeaf(2, 25, 30)
	for _, k := range []int{1, 5, 10, 12, 15, 20, 25, 30} {
		e, ok := parent.search(k, false, 1)
		if !ok || e.Key != k {
			t.Fatalf("search(%d) = %v, %v", k, e, ok)
		}
	}
	for _, k := range []int{0, 7, 11, 17, 22, 31} {
		if _, ok := parent.search(k, false, 1); ok {
			t.Fatalf("search(%d) reported a hit", k)
		}
	}
}
