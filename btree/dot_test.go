package btree

import (
	"strings"
	"testing"
)

func TestWriteDotEmptyTree(t *testing.T) {
	var sb strings.Builder
	if err := MustNew[int, int](2).WriteDot(&sb); err != nil {
		t.Fatalf("WriteDot failed: %v", err)
	}
	if sb.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12,shape=record];\n}\n" {
		t.Fatalf("unexpected output for empty tree:\n%s", sb.String())
	}
}

func TestWriteDotNodesAndEdges(t *testing.T) {
	tree := MustNew[int, int](2)
	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		tree.Insert(k, k)
	}
	var sb strings.Builder
	if err := tree.WriteDot(&sb); err != nil {
		t.Fatalf("WriteDot failed: %v", err)
	}
	out := sb.String()
	for _, frag := range []string{
		`"1" [label="10|20"`,
		`"2" [label="5|6|7"`,
		`"3" [label="12|17"`,
		`"4" [label="30"`,
		`"1" -> "2";`,
		`"1" -> "4";`,
	} {
		if !strings.Contains(out, frag) {
			t.Fatalf("expected %q in DOT output:\n%s", frag, out)
		}
	}
}

func TestWriteDotEscapesRecordSyntax(t *testing.T) {
	tree := MustNew[string, int](2)
	tree.Insert("a|b", 1)
	var sb strings.Builder
	_ = tree.WriteDot(&sb)
	if !strings.Contains(sb.String(), `label="a\|b"`) {
		t.Fatalf("record separator not escaped:\n%s", sb.String())
	}
}
