// Package logging routes the std logger away from the terminal.
// The game owns stdout/stderr while running, so logs go to a rotating file or nowhere.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/survival-arena/config"
)

// Setup configures the std logger from cfg
// Returns the closer of the log file, nil when logging is disabled
func Setup(cfg config.LoggingConfig) (io.Closer, error) {
	if !cfg.Enabled {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.SetOutput(io.Discard)
			return nil, err
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	log.SetOutput(rotator)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("[logging] started, file=%s max=%dMB", cfg.File, cfg.MaxSizeMB)
	return rotator, nil
}
