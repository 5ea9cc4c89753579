package looptest

import "loopsmith/pkg/looptree"

// Recorder hands out named callbacks and records the order they run in.
// Not safe for concurrent use, like the Engine it is meant to observe.
type Recorder struct {
	calls []string
}

// Callback returns a callback that appends name to the recording each
// time it runs.
func (r *Recorder) Callback(name string) looptree.Callback {
	return func() { r.calls = append(r.calls, name) }
}

// Calls returns a copy of the recorded names in execution order.
func (r *Recorder) Calls() []string {
	return append([]string(nil), r.calls...)
}

// Reset clears the recording.
func (r *Recorder) Reset() { r.calls = nil }
