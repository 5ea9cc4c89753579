package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"golang.org/x/time/rate"

	"loopsmith/internal/observability/pprof"
	"loopsmith/internal/watch"
	"loopsmith/pkg/logx"
	"loopsmith/pkg/loopedit"
	"loopsmith/pkg/looptest"
	"loopsmith/pkg/overlay"
)

func watchLoop(*cli.Context) error {
	if overlayPath == "" {
		return fmt.Errorf("watch: --overlay is required")
	}
	if framesPerSec <= 0 {
		return fmt.Errorf("watch: fps must be positive")
	}
	log, closeLog := newLogger()
	defer func() { _ = closeLog() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if pprofAddr != "" {
		dbg := pprof.New(pprofAddr, log)
		if err := dbg.Start(); err != nil {
			return fmt.Errorf("pprof: %w", err)
		}
		defer dbg.Stop(context.Background())
	}

	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng, loopedit.WithLogger(log))
	reg := builtinRegistry(log)

	updates := make(chan *overlay.Overlay, 1)
	deliver := func(o *overlay.Overlay) {
		// Keep only the newest pending overlay.
		select {
		case updates <- o:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- o:
			default:
			}
		}
	}

	// A broken initial file just means the default schedule runs until
	// the first good save.
	if o, err := overlay.Load(overlayPath); err != nil {
		log.Warn("initial overlay not applied", logx.Err(err))
	} else if err := o.Validate(reg); err != nil {
		log.Warn("initial overlay not applied", logx.Err(err))
	} else {
		deliver(o)
	}

	w := watch.New(overlayPath, log, deliver)
	w.SetValidator(func(o *overlay.Overlay) error { return o.Validate(reg) })
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Error("overlay watcher stopped", logx.Err(err))
		}
	}()

	limiter := rate.NewLimiter(rate.Limit(framesPerSec), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		// A new overlay ends the running session (restoring the
		// pristine schedule) and starts a fresh one.
		select {
		case o := <-updates:
			eng.EndSession()
			if err := o.Apply(ed, reg); err != nil {
				log.Error("overlay apply failed", logx.Err(err))
			}
		default:
		}
		eng.Step()
	}

	eng.EndSession()
	log.Info("watch finished", logx.Int("frames", eng.Frames()))
	return nil
}
