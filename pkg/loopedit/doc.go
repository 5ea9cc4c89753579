// Package loopedit edits a host engine's update schedule and guarantees
// the edits are reverted when the engine's execution session ends.
//
// The schedule is the ordered, labeled stage tree modeled by package
// looptree. The host owns it; loopedit's Editor fetches it, applies
// splice edits to a private working copy, and installs the result back
// through the Host boundary. The editor never executes stage work and
// never drives the frame loop.
//
// # Sessions
//
// All editor state is session-scoped. The first mutating call after
// construction (or after a restore) begins a session: the live schedule
// is snapshotted, a working copy is split off, and the editor hooks the
// host's session-end notification. Reset ends the session by writing the
// snapshot back, which erases every edit made through this editor and
// also any edit other parties made to the installed schedule in between.
// Hosts are known to fire the session-end notification more than once;
// Reset is idempotent and unhooks itself after the first delivery, so
// repeats are harmless.
//
// # Concurrency
//
// An Editor is not safe for concurrent use. Hosts deliver the session-end
// notification on the same thread that runs the schedule, and callers are
// expected to keep all editing on that thread too.
package loopedit
