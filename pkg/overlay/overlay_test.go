package overlay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loopsmith/pkg/loopedit"
	"loopsmith/pkg/looptest"
	"loopsmith/pkg/looptree"
)

const sampleDoc = `
stages:
  - label: telemetry.Flush
    callback: flush
    insert: after
    target: PostLateUpdate
  - label: input.Replay
    callback: replay
    insert: before
    target: Update
remove:
  - ProfilerFrameStart
  - ProfilerFrameEnd
`

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister("flush", func() {})
	reg.MustRegister("replay", func() {})
	return reg
}

func TestParseSampleDocument(t *testing.T) {
	t.Parallel()
	o, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(o.Stages) != 2 || len(o.Remove) != 2 {
		t.Fatalf("parsed %d stages and %d removals, want 2 and 2", len(o.Stages), len(o.Remove))
	}
	st := o.Stages[0]
	if st.Label != "telemetry.Flush" || st.Callback != "flush" || st.Insert != "after" || st.Target != "PostLateUpdate" {
		t.Fatalf("stage 0 = %+v", st)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	doc := `
stages:
  - label: x
    callback: flush
    insert: after
    target: Update
    posiiton: first
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	t.Parallel()
	if _, err := Parse([]byte("stages: [")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for an empty document")
	}
}

func TestValidateFailures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		o    Overlay
		want string
	}{
		{
			name: "empty label",
			o:    Overlay{Stages: []Stage{{Callback: "flush", Insert: "after", Target: "Update"}}},
			want: "label is empty",
		},
		{
			name: "duplicate label",
			o: Overlay{Stages: []Stage{
				{Label: "x", Callback: "flush", Insert: "after", Target: "Update"},
				{Label: "x", Callback: "replay", Insert: "before", Target: "Update"},
			}},
			want: "declared twice",
		},
		{
			name: "bad insert mode",
			o:    Overlay{Stages: []Stage{{Label: "x", Callback: "flush", Insert: "around", Target: "Update"}}},
			want: "insert is",
		},
		{
			name: "empty target",
			o:    Overlay{Stages: []Stage{{Label: "x", Callback: "flush", Insert: "after"}}},
			want: "target is empty",
		},
		{
			name: "unknown callback",
			o:    Overlay{Stages: []Stage{{Label: "x", Callback: "nope", Insert: "after", Target: "Update"}}},
			want: "unknown callback",
		},
		{
			name: "empty removal",
			o:    Overlay{Remove: []string{""}},
			want: "label is empty",
		},
	}
	reg := testRegistry()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.o.Validate(reg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestApplyEditsTheSchedule(t *testing.T) {
	t.Parallel()
	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng)
	reg := testRegistry()

	o, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if err := o.Apply(ed, reg); err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	got := eng.CurrentTree()
	if looptree.Find(got, "ProfilerFrameStart") != nil || looptree.Find(got, "ProfilerFrameEnd") != nil {
		t.Fatal("removals were not applied")
	}
	flush := looptree.Find(got, "telemetry.Flush")
	if flush == nil || flush.Callback == nil {
		t.Fatal("inserted stage missing or without callback")
	}
	// input.Replay sits immediately before the Update phase.
	idx := -1
	for i, child := range got.Children {
		if child.Label == "Update" {
			idx = i
			break
		}
	}
	if idx <= 0 || got.Children[idx-1].Label != "input.Replay" {
		var order []string
		for _, child := range got.Children {
			order = append(order, child.Label)
		}
		t.Fatalf("input.Replay is not the predecessor of Update: %v", order)
	}

	eng.EndSession()
	if !looptree.Equal(eng.CurrentTree(), looptest.DefaultSchedule()) {
		t.Fatal("session end did not undo the overlay")
	}
}

func TestApplyStopsAtFirstEditorError(t *testing.T) {
	t.Parallel()
	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng)
	reg := testRegistry()

	o := &Overlay{Stages: []Stage{
		{Label: "first", Callback: "flush", Insert: "before", Target: "Update"},
		{Label: "second", Callback: "replay", Insert: "before", Target: "NoSuchStage"},
		{Label: "third", Callback: "flush", Insert: "after", Target: "Update"},
	}}
	err := o.Apply(ed, reg)
	if !errors.Is(err, loopedit.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	got := eng.CurrentTree()
	if looptree.Find(got, "first") == nil {
		t.Fatal("the edit before the failure was rolled back")
	}
	if looptree.Find(got, "third") != nil {
		t.Fatal("an edit after the failure was applied")
	}
}

func TestApplyRemovesBeforeInserting(t *testing.T) {
	t.Parallel()
	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng)
	reg := testRegistry()

	// The insertion targets a stage the overlay also removes; removal
	// running first makes the insert fail, proving the order.
	o := &Overlay{
		Stages: []Stage{{Label: "x", Callback: "flush", Insert: "before", Target: "AudioUpdate"}},
		Remove: []string{"AudioUpdate"},
	}
	if err := o.Apply(ed, reg); !errors.Is(err, loopedit.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestLoadReadsAFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(o.Stages) != 2 {
		t.Fatalf("loaded %d stages, want 2", len(o.Stages))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
