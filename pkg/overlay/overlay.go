package overlay

import (
	"bytes"
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"

	"loopsmith/pkg/loopedit"
)

// Overlay is a reusable set of schedule edits, usually loaded from a
// YAML file.
type Overlay struct {
	Stages []Stage  `yaml:"stages"`
	Remove []string `yaml:"remove"`
}

// Stage describes one insertion: a new stage Label running the
// registered callback named Callback, spliced Insert ("before"/"after")
// the first stage labeled Target.
type Stage struct {
	Label    string `yaml:"label"`
	Callback string `yaml:"callback"`
	Insert   string `yaml:"insert"`
	Target   string `yaml:"target"`
}

const (
	InsertBefore = "before"
	InsertAfter  = "after"
)

// Parse decodes an overlay document. Unknown keys are an error.
func Parse(data []byte) (*Overlay, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var o Overlay
	if err := dec.Decode(&o); err != nil {
		return nil, fmt.Errorf("overlay: decode: %w", err)
	}
	return &o, nil
}

// Load reads and parses the overlay file at path.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: read: %w", err)
	}
	return Parse(data)
}

// Validate checks the overlay against reg: labels and targets must be
// non-empty, insert modes valid, stage labels unique within the overlay,
// and every referenced callback registered.
func (o *Overlay) Validate(reg *Registry) error {
	seen := make(map[string]struct{}, len(o.Stages))
	for i, st := range o.Stages {
		if st.Label == "" {
			return fmt.Errorf("overlay: stage %d: label is empty", i)
		}
		if _, dup := seen[st.Label]; dup {
			return fmt.Errorf("overlay: stage %q declared twice", st.Label)
		}
		seen[st.Label] = struct{}{}
		if st.Insert != InsertBefore && st.Insert != InsertAfter {
			return fmt.Errorf("overlay: stage %q: insert is %q, want %q or %q", st.Label, st.Insert, InsertBefore, InsertAfter)
		}
		if st.Target == "" {
			return fmt.Errorf("overlay: stage %q: target is empty", st.Label)
		}
		if st.Callback == "" {
			return fmt.Errorf("overlay: stage %q: callback is empty", st.Label)
		}
		if _, ok := reg.Lookup(st.Callback); !ok {
			return fmt.Errorf("overlay: stage %q: unknown callback %q", st.Label, st.Callback)
		}
	}
	for i, label := range o.Remove {
		if label == "" {
			return fmt.Errorf("overlay: remove %d: label is empty", i)
		}
	}
	return nil
}

// Apply validates o and applies it through ed: removals first, then
// insertions in document order. It stops at the first editor error;
// already-applied edits stay in place, and the session's restore is the
// recovery path for a partially applied overlay.
func (o *Overlay) Apply(ed *loopedit.Editor, reg *Registry) error {
	if err := o.Validate(reg); err != nil {
		return err
	}
	for _, label := range o.Remove {
		if _, err := ed.RemoveFirst(label); err != nil {
			return fmt.Errorf("overlay: remove %q: %w", label, err)
		}
	}
	for _, st := range o.Stages {
		cb, _ := reg.Lookup(st.Callback)
		var err error
		if st.Insert == InsertBefore {
			err = ed.InsertBefore(st.Label, cb, st.Target)
		} else {
			err = ed.InsertAfter(st.Label, cb, st.Target)
		}
		if err != nil {
			return fmt.Errorf("overlay: insert %q: %w", st.Label, err)
		}
	}
	return nil
}
