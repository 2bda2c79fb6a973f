// Package machine implements the CHIP-8 virtual machine: memory bus, register file,
// keypad input latch, display buffer, instruction decoder and execution unit.
//
// The machine is driven by the caller through Step, which executes exactly one
// instruction and reports whether the display changed and whether the machine is
// blocked waiting for a key press. The package does no I/O, rendering, input
// polling and pacing are left to the caller.
package machine

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the execution state of the machine.
type State uint8

const (
	// Running means Step executes the next instruction.
	Running State = iota
	// AwaitingKey means an Fx0A instruction is blocked until a key gets pressed.
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// RandomSource provides the random numbers for the Cxkk instruction.
// *rand.Rand satisfies this interface.
type RandomSource interface {
	Intn(n int) int
}

// StepOutcome reports the result of a single Step.
type StepOutcome struct {
	Instruction Instruction  // executed instruction, zero while waiting for a key
	Redraw      bool         // display content was modified
	AwaitingKey bool         // machine is blocked on a key press after this step
	DecodeError *DecodeError // set if the fetched word is not a known instruction
}

// Option configures a Machine.
type Option func(*Machine)

// WithRandom sets the random number source used by the Cxkk instruction.
func WithRandom(src RandomSource) Option {
	return func(m *Machine) {
		m.random = src
	}
}

// WithSeed seeds the default random number source.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.random = rand.New(rand.NewSource(seed))
	}
}

// Machine owns the complete state of a CHIP-8 virtual machine.
type Machine struct {
	memory  *Memory
	regs    Registers
	keys    Keypad
	display Display

	state        State
	waitRegister uint8 // destination register of a pending key wait
	waitWord     uint16

	random RandomSource
}

// New returns a machine with zeroed registers, the font loaded at FontAddress and
// the program counter set to ProgramStart.
func New(options ...Option) *Machine {
	m := &Machine{
		memory: newMemory(),
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.regs.reset()
	for _, opt := range options {
		opt(m)
	}
	return m
}

// LoadProgram copies the program into memory at ProgramStart.
func (m *Machine) LoadProgram(program []byte) error {
	if err := m.memory.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return nil
}

// Step executes a single instruction. While the machine is waiting for a key
// press, Step only checks for a pressed key and does not advance the program.
// A returned error is fatal for the loaded program: a broken call stack or a
// memory access outside of the address space. Unknown instructions are not
// fatal and reported in the outcome.
func (m *Machine) Step() (StepOutcome, error) {
	if m.state == AwaitingKey {
		return m.resolveKeyWait(), nil
	}

	pc := m.regs.PC
	word, err := m.memory.fetch(pc)
	if err != nil {
		return StepOutcome{}, fmt.Errorf("fetching instruction at $%03X: %w", pc, err)
	}

	ins := Decode(word)
	outcome := StepOutcome{Instruction: ins}
	if err := m.execute(ins, &outcome); err != nil {
		return outcome, fmt.Errorf("executing %s ($%04X) at $%03X: %w", ins.Op, word, pc, err)
	}

	if m.state == AwaitingKey {
		outcome.AwaitingKey = true
		return outcome, nil
	}
	m.regs.tickTimers()
	return outcome, nil
}

// resolveKeyWait finishes a pending Fx0A instruction if a key was pressed
// since the wait started.
func (m *Machine) resolveKeyWait() StepOutcome {
	key, ok := m.keys.takeEdge()
	if !ok {
		return StepOutcome{AwaitingKey: true}
	}

	m.regs.V[m.waitRegister] = byte(key)
	m.regs.PC += 2
	m.state = Running
	m.regs.tickTimers()
	return StepOutcome{Instruction: Decode(m.waitWord)}
}

// SetKey sets the pressed state of a keypad key.
func (m *Machine) SetKey(index int, pressed bool) error {
	if err := m.keys.SetPressed(index, pressed); err != nil {
		return fmt.Errorf("setting key %d: %w", index, err)
	}
	return nil
}

// KeyPressed returns whether the keypad key is currently pressed.
func (m *Machine) KeyPressed(index int) bool {
	return m.keys.IsPressed(index)
}

// Framebuffer returns a copy of the current display content.
func (m *Machine) Framebuffer() Frame {
	return m.display.Frame()
}

// RedrawPending returns whether the display changed since the last ConsumeRedraw.
func (m *Machine) RedrawPending() bool {
	return m.display.dirty
}

// ConsumeRedraw returns whether the display changed and clears the flag.
func (m *Machine) ConsumeRedraw() bool {
	dirty := m.display.dirty
	m.display.dirty = false
	return dirty
}

// State returns the current execution state.
func (m *Machine) State() State {
	return m.state
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() Registers {
	return m.regs
}

// Memory returns the memory bus.
func (m *Machine) Memory() *Memory {
	return m.memory
}

// SoundActive returns whether the sound timer is running, a tone should be
// played while it is.
func (m *Machine) SoundActive() bool {
	return m.regs.SoundTimer > 0
}
