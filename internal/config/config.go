// Package config handles application configuration and setup
package config

import (
	"github.com/CalvoM/chip-8/internal/machine"
	"github.com/CalvoM/chip-8/internal/options"
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

// MachineOptions returns the machine options matching the program options.
func MachineOptions(opts options.Program) []machine.Option {
	var machineOptions []machine.Option
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, machine.WithSeed(opts.Seed))
	}
	return machineOptions
}
