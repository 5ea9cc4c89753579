package main

import (
	"fmt"

	"github.com/urfave/cli"

	"loopsmith/pkg/loopedit"
	"loopsmith/pkg/looptest"
	"loopsmith/pkg/overlay"
)

func apply(*cli.Context) error {
	if overlayPath == "" {
		return fmt.Errorf("apply: --overlay is required")
	}
	log, closeLog := newLogger()
	defer func() { _ = closeLog() }()

	o, err := overlay.Load(overlayPath)
	if err != nil {
		return err
	}

	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng, loopedit.WithLogger(log))
	if err := o.Apply(ed, builtinRegistry(log)); err != nil {
		return err
	}
	fmt.Println(ed.DisplayString())

	eng.EndSession()
	fmt.Println()
	fmt.Println(ed.DisplayString())
	return nil
}
