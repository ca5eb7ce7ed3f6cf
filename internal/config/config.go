// Package config handles application configuration and setup
package config

import (
	"path/filepath"

	"github.com/retroenv/p8cart/internal/codemodule"
	"github.com/retroenv/p8cart/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateCodeModule creates the receiver of the program text based on the options.
func CreateCodeModule(logger *log.Logger, opts options.Program) codemodule.Module {
	if opts.Compile {
		return codemodule.NewLua(logger, filepath.Base(opts.Input))
	}
	return codemodule.NewSource()
}
