package machine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_FontLoaded(t *testing.T) {
	mem := newMemory()

	glyph, err := mem.ReadRange(FontAddress+0xA*GlyphSize, GlyphSize)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal([]byte{0xF0, 0x90, 0xF0, 0x90, 0x90}, glyph))
}

func TestMemory_ReadWrite(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		wantErr error
	}{
		{"program start", ProgramStart, nil},
		{"last address", MaxAddress, nil},
		{"reserved region", 0x1FF, ErrReservedRegion},
		{"font region", FontAddress, ErrReservedRegion},
		{"past end", MemorySize, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newMemory()
			err := mem.Write(tt.address, 0xAB)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)

			value, err := mem.Read(tt.address)
			assert.NoError(t, err)
			assert.Equal(t, byte(0xAB), value)
		})
	}
}

func TestMemory_ReadOutOfRange(t *testing.T) {
	mem := newMemory()

	_, err := mem.Read(MemorySize)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = mem.ReadRange(MaxAddress, 2)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var memErr *MemoryError
	assert.True(t, errors.As(err, &memErr))
	assert.Equal(t, "read", memErr.Op)
	assert.Equal(t, MaxAddress, memErr.Address)
	assert.Equal(t, 2, memErr.Length)
}

func TestMemory_WriteRangeIsAllOrNothing(t *testing.T) {
	mem := newMemory()

	err := mem.WriteRange(MaxAddress-1, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	for _, address := range []uint16{MaxAddress - 1, MaxAddress} {
		value, err := mem.Read(address)
		assert.NoError(t, err)
		assert.Equal(t, byte(0), value)
	}
}

func TestMemory_LoadProgram(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		mem := newMemory()
		assert.NoError(t, mem.LoadProgram([]byte{0x12, 0x34}))

		word, err := mem.fetch(ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x1234), word)
	})

	t.Run("fills program space", func(t *testing.T) {
		mem := newMemory()
		program := make([]byte, MaxProgramSize)
		program[len(program)-1] = 0x77
		assert.NoError(t, mem.LoadProgram(program))

		value, err := mem.Read(MaxAddress)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x77), value)
	})

	t.Run("too large", func(t *testing.T) {
		mem := newMemory()
		program := make([]byte, MaxProgramSize+1)
		program[0] = 0xFF

		err := mem.LoadProgram(program)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		value, err := mem.Read(ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, byte(0), value)
	})
}

func TestMemory_FetchAtEnd(t *testing.T) {
	mem := newMemory()

	_, err := mem.fetch(MaxAddress)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
