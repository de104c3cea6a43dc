// Command biggest is the survival-of-the-biggest sandbox: click to spawn, smaller dies on contact.
package main

import (
	"github.com/lixenwraith/survival-arena/app"
	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/engine"
	"github.com/lixenwraith/survival-arena/mode"
)

func main() {
	app.Main(func(cfg *config.Config) engine.Demo {
		return mode.NewBiggest(cfg)
	})
}
