package looptree

import (
	"fmt"
	"strings"
)

// Render dumps the tree for diagnostics: one line per node in pre-order,
// indented two spaces per depth level, each line carrying the quoted
// label, presence of the callback and of both native handles, and the
// child count. The output is deterministic for a given tree but is not a
// serialization format; nothing parses it back. Render of nil is "".
func Render(root *Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	root.Walk(func(n *Node, depth int) bool {
		fmt.Fprintf(&b, "%s%q callback=%t native=%t condition=%t children=%d\n",
			strings.Repeat("  ", depth),
			n.Label,
			n.Callback != nil,
			n.NativeUpdate != 0,
			n.LoopCondition != 0,
			len(n.Children),
		)
		return true
	})
	return strings.TrimSuffix(b.String(), "\n")
}
