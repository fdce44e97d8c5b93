package btree

import "testing"

func benchTree(b *testing.B, degree, count int) *Tree[int, int] {
	b.Helper()
	tree, err := New[int, int](Config{Degree: degree})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := 0; i < count; i++ {
		tree.Insert(i, i)
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	tree := benchTree(b, 64, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(i, i)
	}
}

func BenchmarkSearch(b *testing.B) {
	const count = 100_000
	tree := benchTree(b, 2056, count)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(i % count)
	}
}

func BenchmarkSearchLinear(b *testing.B) {
	const count = 100_000
	tree := benchTree(b, 2056, count)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.SearchLinear(i % count)
	}
}
