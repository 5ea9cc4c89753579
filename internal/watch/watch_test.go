package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"loopsmith/pkg/logx"
	"loopsmith/pkg/overlay"
)

const doc = `
stages:
  - label: x
    callback: flush
    insert: after
    target: Update
`

func writeOverlay(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "overlay.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestReloadDeliversParsedOverlay(t *testing.T) {
	t.Parallel()
	path := writeOverlay(t, t.TempDir(), doc)

	var got *overlay.Overlay
	w := New(path, logx.Nop(), func(o *overlay.Overlay) { got = o })
	w.reload()

	if got == nil || len(got.Stages) != 1 || got.Stages[0].Label != "x" {
		t.Fatalf("delivered = %+v", got)
	}
}

func TestReloadSkipsUnchangedContent(t *testing.T) {
	t.Parallel()
	path := writeOverlay(t, t.TempDir(), doc)

	deliveries := 0
	w := New(path, logx.Nop(), func(*overlay.Overlay) { deliveries++ })
	w.reload()
	w.reload()

	if deliveries != 1 {
		t.Fatalf("deliveries = %d, want 1", deliveries)
	}
}

func TestReloadKeepsPreviousOverlayOnParseError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeOverlay(t, dir, doc)

	deliveries := 0
	w := New(path, logx.Nop(), func(*overlay.Overlay) { deliveries++ })
	w.reload()

	writeOverlay(t, dir, "stages: [")
	w.reload()

	if deliveries != 1 {
		t.Fatalf("deliveries = %d, want 1", deliveries)
	}
}

func TestReloadRunsValidatorBeforeDelivery(t *testing.T) {
	t.Parallel()
	path := writeOverlay(t, t.TempDir(), doc)

	deliveries := 0
	w := New(path, logx.Nop(), func(*overlay.Overlay) { deliveries++ })
	w.SetValidator(func(*overlay.Overlay) error { return errors.New("unknown callback") })
	w.reload()

	if deliveries != 0 {
		t.Fatalf("deliveries = %d, want 0", deliveries)
	}
}

func TestReloadToleratesMissingFile(t *testing.T) {
	t.Parallel()
	w := New(filepath.Join(t.TempDir(), "missing.yaml"), logx.Nop(), func(*overlay.Overlay) {
		t.Fatal("delivered an overlay from a missing file")
	})
	w.reload()
}
