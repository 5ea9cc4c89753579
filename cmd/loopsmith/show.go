package main

import (
	"fmt"

	"github.com/urfave/cli"

	"loopsmith/pkg/loopedit"
	"loopsmith/pkg/looptest"
)

func show(*cli.Context) error {
	eng := looptest.NewEngine(looptest.DefaultSchedule())
	ed := loopedit.New(eng)
	fmt.Println(ed.DisplayString())
	return nil
}
