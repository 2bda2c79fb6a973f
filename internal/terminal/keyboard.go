package terminal

import (
	"io"
	"sync"

	"github.com/CalvoM/chip-8/internal/machine"
	"github.com/CalvoM/chip-8/internal/runner"
)

// DefaultHoldFrames is the number of frames a key stays pressed after its
// last received byte. It has to bridge the auto repeat delay of terminals.
const DefaultHoldFrames = 10

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B
)

// keyMap maps the conventional QWERTY layout to the hexadecimal keypad:
//
//	1 2 3 4    1 2 3 C
//	q w e r    4 5 6 D
//	a s d f    7 8 9 E
//	z x c v    A 0 B F
var keyMap = map[byte]int{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// MapKey returns the keypad index for an input byte.
// Upper case letters map to the same keys as lower case ones.
func MapKey(b byte) (int, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := keyMap[b]
	return key, ok
}

// Keyboard translates a byte stream into keypad state.
// Terminals do not report key releases, a key is released after it has not
// been received for a number of frames.
type Keyboard struct {
	input      chan byte
	stop       chan struct{}
	done       chan struct{} // closed when the reader goroutine exited
	stopOnce   sync.Once
	holdFrames int
	remaining  [machine.KeyCount]int
}

func newKeyboard(holdFrames int) *Keyboard {
	if holdFrames < 1 {
		holdFrames = DefaultHoldFrames
	}
	return &Keyboard{
		input:      make(chan byte, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		holdFrames: holdFrames,
	}
}

// NewKeyboard returns a keyboard that reads from r until it returns an error
// or Close is called.
func NewKeyboard(r io.Reader, holdFrames int) *Keyboard {
	k := newKeyboard(holdFrames)
	go k.read(r)
	return k
}

// Close stops reading from the input. A read that is blocked at that time
// returns with the next received byte, which is discarded.
func (k *Keyboard) Close() {
	k.stopOnce.Do(func() {
		close(k.stop)
	})
}

func (k *Keyboard) read(r io.Reader) {
	defer close(k.done)

	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)

		select {
		case <-k.stop:
			return
		default:
		}

		for _, b := range buf[:n] {
			select {
			case k.input <- b:
			case <-k.stop:
				return
			}
		}
		if err != nil {
			close(k.input)
			return
		}
	}
}

// Poll applies all received bytes to the keypad of the machine.
// It returns runner.ErrQuit when Ctrl-C or Escape was pressed.
func (k *Keyboard) Poll(m *machine.Machine) error {
	if err := k.drain(); err != nil {
		return err
	}

	for key := range machine.KeyCount {
		pressed := k.remaining[key] > 0
		if pressed {
			k.remaining[key]--
		}
		if err := m.SetKey(key, pressed); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keyboard) drain() error {
	for {
		select {
		case b, ok := <-k.input:
			if !ok {
				k.input = nil // stream ended, keep the current key state
				return nil
			}
			if b == keyCtrlC || b == keyEscape {
				return runner.ErrQuit
			}
			if key, ok := MapKey(b); ok {
				k.remaining[key] = k.holdFrames
			}
		default:
			return nil
		}
	}
}
