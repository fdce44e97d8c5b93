package visual

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/btreemap/btree"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Options controls rendering.
type Options struct {
	// MaxKeys limits the number of keys printed per node; 0 means no limit.
	MaxKeys int
	// Width clips node labels so that lines fit into Width columns; 0 means
	// no clipping.
	Width int
	// Color enables ANSI colors.
	Color bool
}

// DefaultOptions returns options suited for the current terminal.
func DefaultOptions() Options {
	return Options{
		MaxKeys: 16,
		Width:   WidthFromTerminal(),
		Color:   !color.NoColor,
	}
}

// minLabelWidth is the narrowest label we clip to, regardless of depth.
const minLabelWidth = 12

// Render draws the node structure of tree. An empty tree renders as "(empty)".
func Render[K cmp.Ordered, P any](tree *btree.Tree[K, P], opts Options) string {
	if tree.IsEmpty() {
		return "(empty)"
	}
	innerColor := color.New(color.FgBlue, color.Bold)
	leafColor := color.New(color.FgGreen)
	if opts.Color {
		innerColor.EnableColor()
		leafColor.EnableColor()
	} else {
		innerColor.DisableColor()
		leafColor.DisableColor()
	}
	var root treeprint.Tree
	var branches []treeprint.Tree // branches[d] is the last node seen at depth d
	tree.Walk(func(v btree.NodeView[K, P]) bool {
		label := clip(nodeLabel(v.Entries, opts.MaxKeys), opts.Width, v.Depth)
		if v.Leaf {
			label = leafColor.Sprint(label)
		} else {
			label = innerColor.Sprint(label)
		}
		if v.Depth == 0 {
			root = treeprint.NewWithRoot(label)
			branches = append(branches[:0], root)
			return true
		}
		b := branches[v.Depth-1].AddBranch(label)
		branches = append(branches[:v.Depth], b)
		return true
	})
	return strings.TrimRight(root.String(), "\n")
}

func nodeLabel[K cmp.Ordered, P any](entries []btree.Entry[K, P], maxKeys int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range entries {
		if maxKeys > 0 && i == maxKeys {
			fmt.Fprintf(&sb, " …(+%d)", len(entries)-maxKeys)
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, e.Key)
	}
	sb.WriteByte(']')
	return sb.String()
}

// clip shortens s to fit into a line of width columns at tree depth depth,
// ending it in an ellipsis. treeprint indents every level by 4 columns.
func clip(s string, width, depth int) string {
	if width <= 0 {
		return s
	}
	width = max(width-4*(depth+1), minLabelWidth)
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// WidthFromTerminal checks whether stdout is a terminal, and if so returns
// its width. Otherwise it returns 80.
func WidthFromTerminal() int {
	width := 80
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			tracer().Debugf("cannot read terminal size: %v", err)
		} else if w > 20 {
			width = w
		}
	}
	tracer().P("visual", "terminal").Debugf("using line width %d", width)
	return width
}
