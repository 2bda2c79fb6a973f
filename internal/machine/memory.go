package machine

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter area holding the font glyphs (512 bytes)
//	0x200-0xFFF: Program space (3584 bytes)
const (
	// MemorySize is the size of the linear address space in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address programs are loaded to and start execution at.
	ProgramStart = 0x200

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// MaxProgramSize is the largest program that fits into program space.
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the flat memory bus of the machine. All accesses are bounds checked,
// writes into the interpreter area below ProgramStart are rejected.
type Memory struct {
	data [MemorySize]byte
}

func newMemory() *Memory {
	m := &Memory{}
	copy(m.data[FontAddress:], fontSet[:])
	return m
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, &MemoryError{Op: "read", Address: int(address), Length: 1, Err: ErrOutOfRange}
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if err := m.checkWrite(address, 1); err != nil {
		return err
	}
	m.data[address] = value
	return nil
}

// ReadRange returns a copy of length bytes starting at address. The whole range
// is validated before anything is read.
func (m *Memory) ReadRange(address uint16, length int) ([]byte, error) {
	if int(address)+length > MemorySize {
		return nil, &MemoryError{Op: "read", Address: int(address), Length: length, Err: ErrOutOfRange}
	}
	buf := make([]byte, length)
	copy(buf, m.data[address:])
	return buf, nil
}

// WriteRange copies data to memory starting at address. Nothing is written if
// any byte of the range is not writable.
func (m *Memory) WriteRange(address uint16, data []byte) error {
	if err := m.checkWrite(address, len(data)); err != nil {
		return err
	}
	copy(m.data[address:], data)
	return nil
}

// LoadProgram copies the program into program space starting at ProgramStart.
// Programs that do not fit are rejected as a whole.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return &MemoryError{Op: "load", Address: ProgramStart, Length: len(program), Err: ErrOutOfRange}
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

func (m *Memory) checkWrite(address uint16, length int) error {
	switch {
	case int(address)+length > MemorySize:
		return &MemoryError{Op: "write", Address: int(address), Length: length, Err: ErrOutOfRange}
	case address < ProgramStart && length > 0:
		return &MemoryError{Op: "write", Address: int(address), Length: length, Err: ErrReservedRegion}
	}
	return nil
}

// fetch reads the big endian instruction word at the address.
func (m *Memory) fetch(address uint16) (uint16, error) {
	if int(address)+1 >= MemorySize {
		return 0, &MemoryError{Op: "read", Address: int(address), Length: 2, Err: ErrOutOfRange}
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}
