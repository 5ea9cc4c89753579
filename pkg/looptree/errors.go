package looptree

import "errors"

var (
	// ErrNilStage indicates a nil entry inside a Children slice.
	ErrNilStage = errors.New("nil stage in children")

	// ErrAliasedStage indicates a node reachable through more than one
	// path, which covers both shared subtrees and cycles.
	ErrAliasedStage = errors.New("stage reachable twice")
)
