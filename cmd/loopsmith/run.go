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
	"loopsmith/pkg/logx"
	"loopsmith/pkg/loopedit"
	"loopsmith/pkg/looptest"
	"loopsmith/pkg/overlay"
)

func run(*cli.Context) error {
	if overlayPath == "" {
		return fmt.Errorf("run: --overlay is required")
	}
	if framesPerSec <= 0 {
		return fmt.Errorf("run: fps must be positive")
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

	o, err := overlay.Load(overlayPath)
	if err != nil {
		return err
	}

	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng, loopedit.WithLogger(log))
	if err := o.Apply(ed, builtinRegistry(log)); err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Limit(framesPerSec), 1)
	frames, ran := 0, 0
	for frames < frameCount {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		ran += eng.Step()
		frames++
	}

	eng.EndSession()
	log.Info("run finished",
		logx.Int("frames", frames),
		logx.Int("callbacks", ran))
	return nil
}
