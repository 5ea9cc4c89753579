package main

import (
	"loopsmith/pkg/logx"
	"loopsmith/pkg/overlay"
)

// builtinRegistry wires the callbacks overlays can reference. Each one
// just logs at debug level so frame output stays quiet unless asked for.
func builtinRegistry(log logx.Logger) *overlay.Registry {
	reg := overlay.NewRegistry()
	register := func(name string) {
		cb := log.With(logx.String("callback", name))
		reg.MustRegister(name, func() { cb.Debug("callback ran") })
	}
	register("log-frame")
	register("flush-telemetry")
	register("replay-input")
	register("sample-heap")
	return reg
}
