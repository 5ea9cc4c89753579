package looptree

// Callback is work contributed to the update loop by external code.
// Built-in stages owned by the host have no Callback; their behavior
// lives behind the opaque native handles.
type Callback func()

// Node is one stage of an update schedule.
//
// Children order is execution order. A nil Children slice ("absent") and
// an empty non-nil one ("present but empty") are distinct states: hosts
// are known to distinguish them, so copies and edits preserve whichever
// the tree had.
type Node struct {
	Label string

	// Callback is non-nil only on stages contributed through this
	// library. The host's built-in stages keep it nil.
	Callback Callback

	// NativeUpdate and LoopCondition are host-owned handles carried
	// verbatim. Zero means unset.
	NativeUpdate  uintptr
	LoopCondition uintptr

	Children []*Node
}

// Clone returns a deep copy of the subtree rooted at n. Labels, callback
// references, and both native handles are copied as-is; no Node pointer
// or Children backing array is shared with the original. Clone of nil is
// nil.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Label:         n.Label,
		Callback:      n.Callback,
		NativeUpdate:  n.NativeUpdate,
		LoopCondition: n.LoopCondition,
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Count reports the number of nodes in the subtree rooted at n,
// including n itself. Count of nil is 0.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// Walk visits the subtree in pre-order (a node before its children,
// children left to right), calling fn with each node and its depth
// relative to n. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(*Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in pre-order whose label equals label,
// including root itself, or nil if the tree has no such node.
func Find(root *Node, label string) *Node {
	var got *Node
	root.Walk(func(n *Node, _ int) bool {
		if n.Label == label {
			got = n
			return false
		}
		return true
	})
	return got
}
