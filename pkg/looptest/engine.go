package looptest

import (
	"sync"

	"loopsmith/pkg/looptree"
)

// Engine is an in-memory scheduling engine. It keeps a canonical default
// schedule (what a freshly booted host would run) and a live schedule
// (what Step executes).
type Engine struct {
	mu     sync.Mutex
	def    *looptree.Node
	live   *looptree.Node
	subs   []subscriber
	seq    uint64
	frames int
}

type subscriber struct {
	id uint64
	fn func()
}

// NewEngine builds an engine whose default and live schedules are both
// deep copies of def. It panics on a structurally invalid schedule, the
// same way a native host would refuse to boot one.
func NewEngine(def *looptree.Node) *Engine {
	if err := looptree.Validate(def); err != nil {
		panic("looptest: invalid schedule: " + err.Error())
	}
	return &Engine{def: def.Clone(), live: def.Clone()}
}

// CurrentTree returns a deep copy of the live schedule. Mutating the
// result never affects the engine.
func (e *Engine) CurrentTree() *looptree.Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live.Clone()
}

// SetCurrentTree installs a deep copy of root as the live schedule,
// effective on the next Step. The caller keeps ownership of root.
func (e *Engine) SetCurrentTree(root *looptree.Node) {
	cl := root.Clone()
	e.mu.Lock()
	e.live = cl
	e.mu.Unlock()
}

// DefaultTree returns a deep copy of the canonical default schedule.
func (e *Engine) DefaultTree() *looptree.Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.def.Clone()
}

// OnSessionEnd registers fn to run when EndSession is called. The
// returned unsubscribe is idempotent and safe to call during delivery.
func (e *Engine) OnSessionEnd(fn func()) func() {
	e.mu.Lock()
	e.seq++
	id := e.seq
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, s := range e.subs {
				if s.id == id {
					e.subs = append(e.subs[:i], e.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// EndSession notifies every currently registered session-end callback in
// registration order. It deliberately does not unregister them: real
// hosts deliver this notification repeatedly, so calling EndSession again
// re-notifies whoever is still subscribed.
func (e *Engine) EndSession() {
	e.mu.Lock()
	subs := make([]subscriber, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}

// Step runs one frame: every callback in the live schedule executes in
// pre-order. It returns how many callbacks ran. A schedule installed
// from inside a callback takes effect on the next Step.
func (e *Engine) Step() int {
	e.mu.Lock()
	root := e.live
	e.frames++
	e.mu.Unlock()

	ran := 0
	root.Walk(func(n *looptree.Node, _ int) bool {
		if n.Callback != nil {
			n.Callback()
			ran++
		}
		return true
	})
	return ran
}

// Frames reports how many frames have been stepped since construction.
func (e *Engine) Frames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}
