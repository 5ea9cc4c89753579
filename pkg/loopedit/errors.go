package loopedit

import "errors"

var (
	// ErrInvalidArgument indicates an empty label, empty target, or nil
	// callback. It is raised before any tree work, so the schedule is
	// untouched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates that an insertion target is absent from the
	// current schedule. Removal reports absence through its boolean
	// result instead.
	ErrNotFound = errors.New("target stage not found")
)
