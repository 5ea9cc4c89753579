package looptree

import "fmt"

// Validate checks that root is a strict tree. It fails with ErrNilStage
// when a Children slice contains a nil entry and with ErrAliasedStage
// when any node is reachable through more than one path (a shared
// subtree or a cycle). Hosts reject such structures at install time, so
// callers building trees by hand should validate before handing them
// over.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: root", ErrNilStage)
	}
	return validate(root, map[*Node]struct{}{})
}

func validate(n *Node, seen map[*Node]struct{}) error {
	if _, dup := seen[n]; dup {
		return fmt.Errorf("%w: %q", ErrAliasedStage, n.Label)
	}
	seen[n] = struct{}{}
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: child %d of %q", ErrNilStage, i, n.Label)
		}
		if err := validate(child, seen); err != nil {
			return err
		}
	}
	return nil
}
