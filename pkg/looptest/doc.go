// Package looptest provides an in-memory host engine for exercising
// schedule edits, in the spirit of httptest: real enough to observe
// behavior against, with no native engine underneath.
//
// The Engine hands schedules across its boundary by value (both
// directions clone), models session-end notifications including the
// repeated-delivery quirk real hosts show, and can step frames so tests
// can watch contributed callbacks actually run.
//
// Engine state is mutex-guarded so tests may poke it from helper
// goroutines, but callbacks and session-end notifications always run
// outside the lock, on the caller's goroutine, like the single-threaded
// hosts it stands in for.
package looptest
