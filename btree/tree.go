package btree

import (
	"cmp"
	"fmt"
	"iter"
)

// Tree is an insert-only B-tree mapping keys of type K to payloads of type P.
//
// The zero value is not usable; create trees with New or MustNew.
type Tree[K cmp.Ordered, P any] struct {
	cfg    Config
	root   *node[K, P]
	height int // 0 means empty tree
	count  int
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered, P any](cfg Config) (*Tree[K, P], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("cannot create B-tree: %v", err)
		return nil, err
	}
	return &Tree[K, P]{cfg: cfg.normalized()}, nil
}

// MustNew creates an empty tree of minimum degree t with default settings
// otherwise. It panics if t < 2; a tree of such a degree cannot split nodes.
func MustNew[K cmp.Ordered, P any](t int) *Tree[K, P] {
	tree, err := New[K, P](Config{Degree: t})
	if err != nil {
		panic(err)
	}
	return tree
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, P]) Config() Config {
	return t.cfg
}

// Degree returns the minimum degree of the tree.
func (t *Tree[K, P]) Degree() int {
	return t.cfg.Degree
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, P]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree, counting every inserted
// duplicate.
func (t *Tree[K, P]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, P]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Search returns the entry stored for key.
func (t *Tree[K, P]) Search(key K) (Entry[K, P], bool) {
	if t.IsEmpty() {
		return Entry[K, P]{}, false
	}
	return t.root.search(key, false, t.cfg.BinarySearchThreshold)
}

// SearchLinear is like Search, but never uses binary search within a node.
func (t *Tree[K, P]) SearchLinear(key K) (Entry[K, P], bool) {
	if t.IsEmpty() {
		return Entry[K, P]{}, false
	}
	return t.root.search(key, true, t.cfg.BinarySearchThreshold)
}

// Insert adds an entry for key. Insert does not check for existing entries
// with an equal key; a duplicate is stored in addition to them.
func (t *Tree[K, P]) Insert(key K, value P) {
	deg := t.cfg.Degree
	switch {
	case t.root == nil:
		t.root = newNode[K, P](deg, true)
		t.root.entries[0] = Entry[K, P]{Key: key, Value: value}
		t.root.n = 1
		t.height = 1
	case t.root.full():
		t.growRoot()
		i := 0
		if t.root.entries[0].Key < key {
			i++
		}
		t.root.children[i].insertNonFull(key, value)
	default:
		t.root.insertNonFull(key, value)
	}
	t.count++
}

// growRoot splits a full root below a new root node. This is the only
// operation that increases the height of the tree.
func (t *Tree[K, P]) growRoot() {
	s := newNode[K, P](t.cfg.Degree, false)
	s.children[0] = t.root
	s.splitChild(0, 0)
	t.root = s
	t.height++
	tracer().Debugf("btree: root split, height now %d", t.height)
}

// Traverse returns all entries in node-major order: the entries of a node
// precede the entries of its subtrees, and subtrees follow each other from
// left to right. For trees taller than 1 the result is not sorted; use
// TraverseInOrder for ascending key order.
//
// For an empty tree Traverse returns (nil, false).
func (t *Tree[K, P]) Traverse() ([]Entry[K, P], bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return t.root.traverse(make([]Entry[K, P], 0, t.count)), true
}

// TraverseInOrder returns all entries in ascending key order.
//
// For an empty tree TraverseInOrder returns (nil, false).
func (t *Tree[K, P]) TraverseInOrder() ([]Entry[K, P], bool) {
	if t.IsEmpty() {
		return nil, false
	}
	out := make([]Entry[K, P], 0, t.count)
	t.root.inorder(func(e Entry[K, P]) bool {
		out = append(out, e)
		return true
	})
	return out, true
}

// String returns a short description of the tree shape.
func (t *Tree[K, P]) String() string {
	if t == nil {
		return "btree(nil)"
	}
	return fmt.Sprintf("btree(t=%d, len=%d, height=%d)", t.cfg.Degree, t.count, t.height)
}

// All returns an iterator over all key/value pairs in ascending key order.
func (t *Tree[K, P]) All() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		t.ForEach(func(e Entry[K, P]) bool {
			return yield(e.Key, e.Value)
		})
	}
}
