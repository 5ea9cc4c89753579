package overlay

import (
	"fmt"
	"sort"
	"sync"

	"loopsmith/pkg/looptree"
)

// Registry maps the callback names overlays reference to the functions
// that implement them.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]looptree.Callback
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{callbacks: map[string]looptree.Callback{}}
}

// Register installs a named callback. Returns an error if the name is
// already taken.
func (r *Registry) Register(name string, cb looptree.Callback) error {
	if name == "" {
		return fmt.Errorf("overlay: callback name is required")
	}
	if cb == nil {
		return fmt.Errorf("overlay: callback is required for %s", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.callbacks[name]; exists {
		return fmt.Errorf("overlay: %s already registered", name)
	}
	r.callbacks[name] = cb
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(name string, cb looptree.Callback) {
	if err := r.Register(name, cb); err != nil {
		panic(err)
	}
}

// Lookup returns the callback registered under name.
func (r *Registry) Lookup(name string) (looptree.Callback, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cb, ok := r.callbacks[name]
	return cb, ok
}

// Names returns a sorted list of registered callback names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.callbacks))
	for name := range r.callbacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
