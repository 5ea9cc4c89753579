package main

import (
	"github.com/urfave/cli"

	"loopsmith/pkg/logx"
)

var (
	logLevel     string
	logFile      string
	overlayPath  string
	frameCount   int
	framesPerSec float64
	pprofAddr    string

	overlayFlag = cli.StringFlag{
		Name:        "overlay, o",
		Usage:       "path to the overlay yaml",
		Destination: &overlayPath,
	}
	pprofFlag = cli.StringFlag{
		Name:        "pprof",
		Usage:       "serve pprof on this address (e.g. 127.0.0.1:6060)",
		Destination: &pprofAddr,
	}
	framesFlag = cli.IntFlag{
		Name:        "frames, n",
		Usage:       "how many frames to run",
		Value:       300,
		Destination: &frameCount,
	}
	fpsFlag = cli.Float64Flag{
		Name:        "fps",
		Usage:       "frame pacing rate",
		Value:       60,
		Destination: &framesPerSec,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "loopsmith"
	app.HelpName = "loopsmith"
	app.Usage = "edit a host engine's update schedule and watch the edits run"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "level, l",
			Usage:       "log level (trace|debug|info|warn|error)",
			Value:       "info",
			Destination: &logLevel,
		},
		cli.StringFlag{
			Name:        "log-file",
			Usage:       "also write JSON logs to this file",
			Destination: &logFile,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "show",
			Usage:  "print the default schedule",
			Action: show,
		},
		{
			Name:   "apply",
			Usage:  "apply an overlay, print the schedule, then end the session",
			Action: apply,
			Flags:  []cli.Flag{overlayFlag},
		},
		{
			Name:   "run",
			Usage:  "apply an overlay and step paced frames until done",
			Action: run,
			Flags:  []cli.Flag{overlayFlag, framesFlag, fpsFlag, pprofFlag},
		},
		{
			Name:   "watch",
			Usage:  "step frames forever, re-applying the overlay when its file changes",
			Action: watchLoop,
			Flags:  []cli.Flag{overlayFlag, fpsFlag, pprofFlag},
		},
	}
	return app
}

func newLogger() (logx.Logger, func() error) {
	return logx.New(logx.Config{
		Level:   logLevel,
		Console: true,
		File:    logx.FileConfig{Enabled: logFile != "", Path: logFile},
	})
}
