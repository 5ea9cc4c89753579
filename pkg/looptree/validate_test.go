package looptree

import (
	"errors"
	"testing"
)

func TestEqualDistinguishesChildrenShape(t *testing.T) {
	t.Parallel()
	absent := &Node{Label: "Stage"}
	empty := &Node{Label: "Stage", Children: []*Node{}}
	if Equal(absent, empty) {
		t.Fatal("absent and empty children compared equal")
	}
	if !Equal(absent.Clone(), absent) || !Equal(empty.Clone(), empty) {
		t.Fatal("clone broke children shape")
	}
}

func TestEqualComparesCallbackPresenceOnly(t *testing.T) {
	t.Parallel()
	a := &Node{Label: "Stage", Callback: func() {}}
	b := &Node{Label: "Stage", Callback: func() {}}
	if !Equal(a, b) {
		t.Fatal("two contributed stages with different functions compared unequal")
	}
	if Equal(a, &Node{Label: "Stage"}) {
		t.Fatal("contributed and built-in stages compared equal")
	}
}

func TestEqualComparesNativeHandles(t *testing.T) {
	t.Parallel()
	a := &Node{Label: "Stage", NativeUpdate: 1}
	b := &Node{Label: "Stage", NativeUpdate: 2}
	if Equal(a, b) {
		t.Fatal("differing native handles compared equal")
	}
}

func TestValidateAcceptsStrictTree(t *testing.T) {
	t.Parallel()
	if err := Validate(sampleSchedule()); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestValidateRejectsNilChild(t *testing.T) {
	t.Parallel()
	root := &Node{Label: "Root", Children: []*Node{{Label: "A"}, nil}}
	err := Validate(root)
	if !errors.Is(err, ErrNilStage) {
		t.Fatalf("error = %v, want ErrNilStage", err)
	}
}

func TestValidateRejectsSharedSubtree(t *testing.T) {
	t.Parallel()
	shared := &Node{Label: "Shared"}
	root := &Node{Label: "Root", Children: []*Node{
		{Label: "A", Children: []*Node{shared}},
		{Label: "B", Children: []*Node{shared}},
	}}
	err := Validate(root)
	if !errors.Is(err, ErrAliasedStage) {
		t.Fatalf("error = %v, want ErrAliasedStage", err)
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	t.Parallel()
	root := &Node{Label: "Root"}
	child := &Node{Label: "A", Children: []*Node{root}}
	root.Children = []*Node{child}
	err := Validate(root)
	if !errors.Is(err, ErrAliasedStage) {
		t.Fatalf("error = %v, want ErrAliasedStage", err)
	}
}

func TestValidateRejectsNilRoot(t *testing.T) {
	t.Parallel()
	if err := Validate(nil); !errors.Is(err, ErrNilStage) {
		t.Fatalf("error = %v, want ErrNilStage", err)
	}
}
