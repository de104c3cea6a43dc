// Package app is the shared process entry of both demos.
package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/lixenwraith/survival-arena/audio"
	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/constants"
	"github.com/lixenwraith/survival-arena/core"
	"github.com/lixenwraith/survival-arena/engine"
	"github.com/lixenwraith/survival-arena/logging"
)

// DemoFactory builds a demo from the loaded config
type DemoFactory func(cfg *config.Config) engine.Demo

// Main runs the demo and exits the process: 0 on quit, -1 when the terminal cannot be opened
func Main(newDemo DemoFactory) {
	os.Exit(run(newDemo))
}

func run(newDemo DemoFactory) int {
	cfg := config.Default()

	logCloser, err := logging.Setup(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", errors.Wrap(err, "logging setup"))
		return -1
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	if opts := profileOptions(cfg.Debug); opts != nil {
		defer profile.Start(opts...).Stop()
	}

	demo := newDemo(cfg)

	screen, err := openScreen(demo.Title())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return -1
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		log.Printf("[audio] continuing without audio: %v", err)
	}
	defer player.Close()

	session, err := engine.NewSession(demo, engine.Options{
		Physics: cfg.Physics,
		Canvas:  screen,
		Cues:    player,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", errors.Wrap(err, "start session"))
		return -1
	}
	defer session.Close()

	events := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() { forward(screen, events) })

	session.Run(events)
	return 0
}

// openScreen initializes the terminal as the demo window
func openScreen(title string) (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	screen.SetTitle(title)
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// forward moves terminal events into the frame loop channel until the screen is finalized
func forward(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// profileOptions maps the debug config to pkg/profile options, nil when profiling is off
func profileOptions(cfg config.DebugConfig) []func(*profile.Profile) {
	var mode func(*profile.Profile)
	switch cfg.Profile {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil
	}
	return []func(*profile.Profile){
		mode,
		profile.ProfilePath(cfg.ProfileDir),
		profile.NoShutdownHook,
		profile.Quiet,
	}
}
