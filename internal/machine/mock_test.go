package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// fixedRandom is a random source that always returns the same value.
type fixedRandom int

func (f fixedRandom) Intn(n int) int {
	return int(f) % n
}

// newTestMachine returns a machine with the instruction words loaded at ProgramStart.
func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}

	m := New(WithRandom(fixedRandom(0xAB)))
	assert.NoError(t, m.LoadProgram(program))
	return m
}

// stepN executes n steps and fails the test on a fatal error.
func stepN(t *testing.T, m *Machine, n int) StepOutcome {
	t.Helper()

	var outcome StepOutcome
	for range n {
		var err error
		outcome, err = m.Step()
		assert.NoError(t, err)
	}
	return outcome
}
