// Command arena is the two-paddle field: click to launch balls, touching balls destroy each other.
package main

import (
	"github.com/lixenwraith/survival-arena/app"
	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/engine"
	"github.com/lixenwraith/survival-arena/mode"
)

func main() {
	app.Main(func(cfg *config.Config) engine.Demo {
		return mode.NewArena(cfg)
	})
}
