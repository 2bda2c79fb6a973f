package machine

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// FlagRegister is the index of VF, overwritten by carry, borrow, shift and collision results.
	FlagRegister = 0xF
)

// Registers is the register file of the machine.
type Registers struct {
	V [RegisterCount]byte

	I  uint16 // index register
	PC uint16 // program counter
	SP uint8  // number of used call stack entries

	Stack [StackDepth]uint16

	DelayTimer byte
	SoundTimer byte
}

func (r *Registers) reset() {
	*r = Registers{PC: ProgramStart}
}

// push stores the address on the call stack.
func (r *Registers) push(address uint16) error {
	if int(r.SP) >= StackDepth {
		return &StackError{Op: "call", Depth: int(r.SP), Err: ErrStackOverflow}
	}
	r.Stack[r.SP] = address
	r.SP++
	return nil
}

// pop removes and returns the top address of the call stack.
func (r *Registers) pop() (uint16, error) {
	if r.SP == 0 {
		return 0, &StackError{Op: "return", Depth: 0, Err: ErrStackUnderflow}
	}
	r.SP--
	return r.Stack[r.SP], nil
}

// tickTimers decrements both timers once, they saturate at zero.
func (r *Registers) tickTimers() {
	if r.DelayTimer > 0 {
		r.DelayTimer--
	}
	if r.SoundTimer > 0 {
		r.SoundTimer--
	}
}

// setFlag sets VF to 1 if the condition is true, otherwise to 0.
func (r *Registers) setFlag(condition bool) {
	if condition {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}
