package loopedit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"loopsmith/pkg/logx"
	"loopsmith/pkg/looptree"
)

// Host is the scheduling engine boundary the editor drives.
//
// Contract:
//   - CurrentTree hands out the live schedule by value; the editor
//     clones whatever it receives and never mutates it in place.
//   - SetCurrentTree installs a full replacement schedule, effective on
//     the host's next cycle.
//   - OnSessionEnd registers a session-end callback and returns an
//     idempotent unsubscribe. Hosts may deliver the notification more
//     than once per session.
type Host interface {
	CurrentTree() *looptree.Node
	SetCurrentTree(*looptree.Node)
	OnSessionEnd(fn func()) (unsubscribe func())
}

// Editor applies splice edits to the host's update schedule and restores
// the pre-session schedule when the session ends. One Editor per process
// is the expected embedding. Not safe for concurrent use.
type Editor struct {
	host Host
	log  logx.Logger

	sess *session
}

// session is everything the editor remembers between the first mutating
// call and the restore.
type session struct {
	id      string
	started time.Time

	// work is the private working copy, the source of truth for what
	// this editor changed. pristine is the untouched snapshot written
	// back at session end.
	work     *looptree.Node
	pristine *looptree.Node

	inserted    []string
	edits       int
	unsubscribe func()
}

type Option func(*Editor)

// WithLogger routes the editor's session and edit logging. The default
// is logx.Nop().
func WithLogger(log logx.Logger) Option {
	return func(ed *Editor) { ed.log = log }
}

func New(host Host, opts ...Option) *Editor {
	ed := &Editor{host: host, log: logx.Nop()}
	for _, opt := range opts {
		opt(ed)
	}
	return ed
}

// ensureSession starts a session on the first mutating call: snapshot
// the live schedule, split off the working copy, and hook the host's
// session-end notification exactly once.
func (ed *Editor) ensureSession() *session {
	if ed.sess != nil {
		return ed.sess
	}
	live := ed.host.CurrentTree()
	s := &session{
		id:       uuid.NewString(),
		started:  time.Now(),
		work:     live.Clone(),
		pristine: live.Clone(),
	}
	s.unsubscribe = ed.host.OnSessionEnd(ed.Reset)
	ed.sess = s
	ed.log.Info("session started",
		logx.String("session", s.id),
		logx.Int("stages", s.work.Count()))
	return s
}

// InsertBefore splices a new stage running cb as the immediate
// predecessor of the first stage labeled target (pre-order, leftmost
// first). The label and callback are required; a missing target returns
// an error wrapping ErrNotFound and leaves the schedule untouched.
func (ed *Editor) InsertBefore(label string, cb looptree.Callback, target string) error {
	return ed.insert(label, cb, target, looptree.InsertBefore, "before")
}

// InsertAfter is InsertBefore on the other side of the target.
func (ed *Editor) InsertAfter(label string, cb looptree.Callback, target string) error {
	return ed.insert(label, cb, target, looptree.InsertAfter, "after")
}

func (ed *Editor) insert(label string, cb looptree.Callback, target string, splice func(*looptree.Node, string, *looptree.Node) bool, position string) error {
	if label == "" {
		return fmt.Errorf("%w: stage label is empty", ErrInvalidArgument)
	}
	if cb == nil {
		return fmt.Errorf("%w: stage %q has no callback", ErrInvalidArgument, label)
	}
	if target == "" {
		return fmt.Errorf("%w: target label is empty", ErrInvalidArgument)
	}

	s := ed.ensureSession()
	stage := &looptree.Node{Label: label, Callback: cb}
	if !splice(s.work, target, stage) {
		return fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	s.inserted = append(s.inserted, label)
	s.edits++
	ed.host.SetCurrentTree(s.work)
	ed.log.Info("stage inserted",
		logx.String("session", s.id),
		logx.String("stage", label),
		logx.String("position", position),
		logx.String("target", target))
	return nil
}

// RemoveFirst detaches the first stage labeled label together with its
// whole subtree. It reports whether anything was removed; an absent
// label is an expected outcome, not an error.
func (ed *Editor) RemoveFirst(label string) (bool, error) {
	if label == "" {
		return false, fmt.Errorf("%w: stage label is empty", ErrInvalidArgument)
	}

	s := ed.ensureSession()
	got := looptree.RemoveFirst(s.work, label)
	if got == nil {
		ed.log.Debug("nothing to remove",
			logx.String("session", s.id),
			logx.String("stage", label))
		return false, nil
	}
	s.edits++
	ed.host.SetCurrentTree(s.work)
	ed.log.Info("stage removed",
		logx.String("session", s.id),
		logx.String("stage", label),
		logx.Int("detached", got.Count()))
	return true, nil
}

// DisplayString renders the session's working copy, or the host's live
// schedule when no session is active. The fetch does not begin a
// session.
func (ed *Editor) DisplayString() string {
	if ed.sess != nil {
		return looptree.Render(ed.sess.work)
	}
	return looptree.Render(ed.host.CurrentTree())
}

// Reset ends the session: the pre-session snapshot is installed, the
// session-end hook is released, and all session state is dropped. With
// no active session Reset is a no-op, which makes the host's repeated
// session-end notifications harmless.
//
// Restoring the snapshot also discards schedule changes made by anyone
// else after the session started; this editor assumes it is the only
// schedule editor in the process.
func (ed *Editor) Reset() {
	s := ed.sess
	if s == nil {
		return
	}
	ed.sess = nil

	ed.host.SetCurrentTree(s.pristine)
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	ed.log.Info("session restored",
		logx.String("session", s.id),
		logx.Int("edits", s.edits),
		logx.Strs("inserted", s.inserted),
		logx.Duration("lasted", time.Since(s.started)))
}

// SessionActive reports whether a session has started and not yet been
// restored.
func (ed *Editor) SessionActive() bool { return ed.sess != nil }

// Inserted returns the labels inserted in the current session, in
// insertion order, or nil when no session is active. Diagnostics only;
// cleanup never replays this journal.
func (ed *Editor) Inserted() []string {
	if ed.sess == nil {
		return nil
	}
	return append([]string(nil), ed.sess.inserted...)
}
