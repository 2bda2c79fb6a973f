// Package app provides the main application helpers for the interpreter.
package app

import (
	"github.com/CalvoM/chip-8/internal/options"
	"github.com/CalvoM/chip-8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner logs the program name and version unless quiet mode is set.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo logs the information about the loaded ROM and the session mode.
func PrintInfo(logger *log.Logger, opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	mode := "interactive"
	if opts.Headless() {
		mode = "headless"
	}

	logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("mode", mode),
		log.Int("speed", opts.Speed),
	)
}

// PrintStats logs the counters of a finished session.
func PrintStats(logger *log.Logger, stats runner.Stats) {
	logger.Info("Session finished",
		log.Int("steps", stats.Steps),
		log.Int("frames", stats.Frames),
		log.Int("redraws", stats.Redraws),
		log.Int("unknown_instructions", stats.DecodeErrors),
	)
}
