// Package runner drives a machine session: it interleaves input refreshes,
// batches of instruction steps and display refreshes at a fixed frame rate.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CalvoM/chip-8/internal/disasm"
	"github.com/CalvoM/chip-8/internal/machine"
	"github.com/CalvoM/chip-8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second of the interactive loop.
const FrameRate = 60

// ErrQuit is returned by an Input to end the session.
var ErrQuit = errors.New("quit requested")

// Input refreshes the keypad state of the machine once per frame.
type Input interface {
	Poll(m *machine.Machine) error
}

// Renderer outputs the display content.
type Renderer interface {
	Render(frame machine.Frame) error
}

// Stats contains counters of a session.
type Stats struct {
	Steps        int
	DecodeErrors int
	Redraws      int
	Frames       int
}

// Runner executes a machine session.
type Runner struct {
	logger  *log.Logger
	machine *machine.Machine
	opts    options.Program
	stats   Stats

	stepCarry int // steps owed to the next frame when the speed is not a multiple of the frame rate
}

// New returns a runner for the machine.
func New(logger *log.Logger, m *machine.Machine, opts options.Program) *Runner {
	return &Runner{
		logger:  logger,
		machine: m,
		opts:    opts,
	}
}

// RunSteps executes exactly n steps without pacing, input or output.
func (r *Runner) RunSteps(ctx context.Context, n int) (Stats, error) {
	for range n {
		if err := ctx.Err(); err != nil {
			return r.stats, fmt.Errorf("running steps: %w", err)
		}
		if err := r.step(); err != nil {
			return r.stats, err
		}
	}
	return r.stats, nil
}

// Run executes the session until the context is cancelled, the input requests
// to quit or the machine fails.
func (r *Runner) Run(ctx context.Context, input Input, renderer Renderer) (Stats, error) {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		err := r.frame(input, renderer)
		switch {
		case errors.Is(err, ErrQuit):
			return r.stats, nil
		case err != nil:
			return r.stats, err
		}

		select {
		case <-ctx.Done():
			return r.stats, nil
		case <-ticker.C:
		}
	}
}

// frame runs a single frame: input refresh, the steps of the frame and a
// display refresh if the display changed.
func (r *Runner) frame(input Input, renderer Renderer) error {
	if err := input.Poll(r.machine); err != nil {
		if errors.Is(err, ErrQuit) {
			return err
		}
		return fmt.Errorf("polling input: %w", err)
	}

	for range r.stepsForFrame() {
		if err := r.step(); err != nil {
			return err
		}
	}

	r.stats.Frames++
	if !r.machine.ConsumeRedraw() {
		return nil
	}
	if err := renderer.Render(r.machine.Framebuffer()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

// stepsForFrame spreads the configured speed evenly over the frames of a second.
func (r *Runner) stepsForFrame() int {
	r.stepCarry += r.opts.Speed
	n := r.stepCarry / FrameRate
	r.stepCarry %= FrameRate
	return n
}

func (r *Runner) step() error {
	pc := r.machine.Registers().PC

	outcome, err := r.machine.Step()
	if err != nil {
		r.logger.Error("Machine stopped", log.Hex("pc", pc), log.Err(err))
		return fmt.Errorf("step %d: %w", r.stats.Steps, err)
	}
	r.stats.Steps++

	if outcome.Redraw {
		r.stats.Redraws++
	}

	if outcome.DecodeError != nil {
		r.stats.DecodeErrors++
		r.logger.Warn("Unknown instruction",
			log.Hex("pc", outcome.DecodeError.Address),
			log.Hex("opcode", outcome.DecodeError.Opcode))
		return nil
	}

	if r.opts.Trace && outcome.Instruction.Op != machine.OpUnknown {
		word := outcome.Instruction.Word
		r.logger.Debug("Executed",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("code", disasm.Format(word)))
	}
	return nil
}
