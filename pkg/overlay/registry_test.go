package overlay

import (
	"strings"
	"testing"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	if err := reg.Register("flush", func() {}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, ok := reg.Lookup("flush"); !ok {
		t.Fatal("registered callback not found")
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatal("Lookup invented a callback")
	}
}

func TestRegistryRejectsDuplicatesAndBadInput(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	if err := reg.Register("", func() {}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := reg.Register("flush", nil); err == nil {
		t.Fatal("expected error for nil callback")
	}
	if err := reg.Register("flush", func() {}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	err := reg.Register("flush", func() {})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("error = %v, want already registered", err)
	}
}

func TestRegistryNamesAreSorted(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	reg.MustRegister("zeta", func() {})
	reg.MustRegister("alpha", func() {})
	reg.MustRegister("mid", func() {})

	got := reg.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	reg := NewRegistry()
	reg.MustRegister("flush", func() {})
	reg.MustRegister("flush", func() {})
}
