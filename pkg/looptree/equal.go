package looptree

// Equal reports whether two trees are structurally identical: same
// labels, same callback presence (function identity is not comparable),
// same native handles, and the same Children shape recursively, where
// nil and empty Children are different shapes.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Label != b.Label ||
		(a.Callback == nil) != (b.Callback == nil) ||
		a.NativeUpdate != b.NativeUpdate ||
		a.LoopCondition != b.LoopCondition {
		return false
	}
	if (a.Children == nil) != (b.Children == nil) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
