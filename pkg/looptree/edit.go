package looptree

// InsertBefore splices stage into the tree as the immediate predecessor
// of the first descendant of root labeled target, in that descendant's
// parent's Children. "First" means pre-order, children left to right;
// root itself never matches because the schedule anchor cannot acquire
// siblings. It reports whether a target was found; on false the tree is
// unchanged.
func InsertBefore(root *Node, target string, stage *Node) bool {
	return splice(root, target, stage, 0)
}

// InsertAfter is InsertBefore on the other side: stage becomes the
// immediate successor of the first matching descendant.
func InsertAfter(root *Node, target string, stage *Node) bool {
	return splice(root, target, stage, 1)
}

// splice walks root's descendants in pre-order. At the first child whose
// label equals target it rebuilds the parent's Children with stage placed
// at the match index plus off (0 = before, 1 = after). Rebuilding instead
// of shifting in place keeps previously captured Children slices intact.
func splice(parent *Node, target string, stage *Node, off int) bool {
	if parent == nil {
		return false
	}
	for i, child := range parent.Children {
		if child.Label == target {
			parent.Children = spliceAt(parent.Children, i+off, stage)
			return true
		}
		if splice(child, target, stage, off) {
			return true
		}
	}
	return false
}

func spliceAt(children []*Node, at int, stage *Node) []*Node {
	out := make([]*Node, 0, len(children)+1)
	out = append(out, children[:at]...)
	out = append(out, stage)
	out = append(out, children[at:]...)
	return out
}

// RemoveFirst detaches the first descendant of root labeled label (same
// traversal order as InsertBefore) together with its entire subtree and
// returns it. It returns nil, with the tree unchanged, when no descendant
// matches. Root itself is never removed.
func RemoveFirst(root *Node, label string) *Node {
	if root == nil {
		return nil
	}
	for i, child := range root.Children {
		if child.Label == label {
			kept := make([]*Node, 0, len(root.Children)-1)
			kept = append(kept, root.Children[:i]...)
			kept = append(kept, root.Children[i+1:]...)
			root.Children = kept
			return child
		}
		if got := RemoveFirst(child, label); got != nil {
			return got
		}
	}
	return nil
}
