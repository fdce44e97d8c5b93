package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/npillmayer/btreemap/btree"
	"github.com/npillmayer/btreemap/visual"
	"golang.org/x/term"
)

// Shell is an interactive session on a B-tree with string keys and values.
type Shell struct {
	tree     *btree.Tree[string, string]
	opts     visual.Options
	errColor *color.Color
	okColor  *color.Color
}

// NewShell creates a shell on an empty tree of minimum degree t.
func NewShell(t int, useColor bool) (*Shell, error) {
	tree, err := btree.New[string, string](btree.Config{Degree: t})
	if err != nil {
		return nil, err
	}
	sh := &Shell{
		tree:     tree,
		opts:     visual.DefaultOptions(),
		errColor: color.New(color.FgRed),
		okColor:  color.New(color.FgGreen),
	}
	sh.opts.Color = useColor
	if useColor {
		sh.errColor.EnableColor()
		sh.okColor.EnableColor()
	} else {
		sh.errColor.DisableColor()
		sh.okColor.DisableColor()
	}
	return sh, nil
}

const shellHelp = `
B-Tree Shell

Available Commands:
  SET <key> <val> Insert a key-value pair into the B-Tree
  GET <key>       Retrieve the value for key from the B-Tree
  LGET <key>      Like GET, but scan nodes linearly
  DUMP            List all entries in node order
  LIST            List all entries in key order
  TREE            Draw the node structure
  STATS           Print shape statistics
  CHECK           Validate tree invariants
  DOT             Print the tree in Graphviz DOT format
  HELP            Print this help
  EXIT            Terminate this session
`

// Run reads commands from stdin until EOF or EXIT. If stdin is a terminal,
// lines are edited with readline and kept in a history file.
func (sh *Shell) Run(historyFile string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return sh.runScanner(os.Stdin, os.Stdout)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return fmt.Errorf("cannot start readline: %w", err)
	}
	defer rl.Close()
	fmt.Fprint(rl.Stdout(), shellHelp)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		if sh.Exec(line, rl.Stdout()) {
			return nil
		}
	}
}

func (sh *Shell) runScanner(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if sh.Exec(scanner.Text(), w) {
			return nil
		}
	}
	return scanner.Err()
}

// Exec executes a single command line and writes its output to w. It
// returns true if the session should end.
func (sh *Shell) Exec(line string, w io.Writer) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return false
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	default:
		sh.errColor.Fprintf(w, "Unknown command %q\n", command)
	case "set":
		sh.set(args, w)
	case "get":
		sh.get(args, w, false)
	case "lget":
		sh.get(args, w, true)
	case "dump":
		entries, ok := sh.tree.Traverse()
		sh.list(entries, ok, w)
	case "list":
		entries, ok := sh.tree.TraverseInOrder()
		sh.list(entries, ok, w)
	case "tree":
		fmt.Fprintln(w, visual.Render(sh.tree, sh.opts))
	case "stats":
		fmt.Fprintln(w, visual.Collect(sh.tree))
	case "check":
		if err := sh.tree.Check(); err != nil {
			sh.errColor.Fprintln(w, err.Error())
		} else {
			sh.okColor.Fprintln(w, "OK")
		}
	case "dot":
		if err := sh.tree.WriteDot(w); err != nil {
			sh.errColor.Fprintln(w, err.Error())
		}
	case "help":
		fmt.Fprint(w, shellHelp)
	case "exit", "quit":
		return true
	}
	return false
}

func (sh *Shell) set(args []string, w io.Writer) {
	if len(args) != 2 {
		fmt.Fprintln(w, "Usage: SET <key> <value>")
		return
	}
	sh.tree.Insert(args[0], args[1])
	fmt.Fprintln(w, sh.tree)
}

func (sh *Shell) get(args []string, w io.Writer, linear bool) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: GET <key>")
		return
	}
	var e btree.Entry[string, string]
	var ok bool
	if linear {
		e, ok = sh.tree.SearchLinear(args[0])
	} else {
		e, ok = sh.tree.Search(args[0])
	}
	if !ok {
		sh.errColor.Fprintln(w, "Key not found.")
		return
	}
	fmt.Fprintln(w, e.Value)
}

func (sh *Shell) list(entries []btree.Entry[string, string], ok bool, w io.Writer) {
	if !ok {
		fmt.Fprintln(w, "(empty)")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s = %s\n", e.Key, e.Value)
	}
}
