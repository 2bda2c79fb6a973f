package runner

import (
	"github.com/CalvoM/chip-8/internal/machine"
)

// fakeInput requests to quit after a number of polls and presses the
// configured key on the given poll.
type fakeInput struct {
	polls     int
	quitAfter int

	pressOnPoll int
	key         int
}

func (f *fakeInput) Poll(m *machine.Machine) error {
	f.polls++
	if f.quitAfter > 0 && f.polls > f.quitAfter {
		return ErrQuit
	}
	if f.pressOnPoll > 0 && f.polls == f.pressOnPoll {
		return m.SetKey(f.key, true)
	}
	return nil
}

// fakeRenderer records all rendered frames.
type fakeRenderer struct {
	frames []machine.Frame
	err    error
}

func (f *fakeRenderer) Render(frame machine.Frame) error {
	if f.err != nil {
		return f.err
	}
	f.frames = append(f.frames, frame)
	return nil
}
