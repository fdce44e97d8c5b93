package btree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDot outputs the node structure of the tree in Graphviz DOT format
// (for debugging purposes). Every node is drawn as a record with one field per
// entry key.
func (t *Tree[K, P]) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	if !t.IsEmpty() {
		ids := 0
		t.dotNode(bw, t.root, &ids)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func (t *Tree[K, P]) dotNode(w *bufio.Writer, x *node[K, P], ids *int) int {
	*ids++
	id := *ids
	keys := make([]string, x.n)
	for i := range keys {
		keys[i] = dotEscaper.Replace(fmt.Sprint(x.entries[i].Key))
	}
	fmt.Fprintf(w, "\t\"%d\" [label=\"%s\"%s];\n", id, strings.Join(keys, "|"), dotStyles(x.leaf))
	if !x.leaf {
		for _, c := range x.children[:x.n+1] {
			cid := t.dotNode(w, c, ids)
			fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, cid)
		}
	}
	return id
}

var dotEscaper = strings.NewReplacer("|", `\|`, "{", `\{`, "}", `\}`, `"`, `\"`, "<", `\<`, ">", `\>`)

func dotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=white"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
