package easel

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives diagnostic lines while debug mode is on.
var debugOutput io.Writer = os.Stderr

// globalDebug mirrors the most recently set Engine debug flag so that node
// operations (which lack an Engine pointer) can check it cheaply. Only valid
// with a single Engine; multiple Engines with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// SetDebugOutput redirects debug lines (stderr by default). Passing nil
// restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOutput = w
}

// debugf prints one "[easel]"-prefixed line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[easel] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("easel debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugDumpTree writes an indented outline of the subtree rooted at n.
func debugDumpTree(w io.Writer, n *Node, depth int) {
	p := n.Position
	_, _ = fmt.Fprintf(w, "%*s%s %q pos=(%.4f, %.4f, %.4f) euler=(%.4f, %.4f, %.4f) scale=(%.3f, %.3f, %.3f)\n",
		depth*2, "", n.Type, n.Name, p.X, p.Y, p.Z,
		n.Euler.X, n.Euler.Y, n.Euler.Z, n.Scale.X, n.Scale.Y, n.Scale.Z)
	for _, c := range n.children {
		debugDumpTree(w, c, depth+1)
	}
}
