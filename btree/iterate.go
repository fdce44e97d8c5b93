package btree

// ForEach walks entries in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, P]) ForEach(fn func(entry Entry[K, P]) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.root.inorder(fn)
}
