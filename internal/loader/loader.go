// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/CalvoM/chip-8/internal/machine"
	"github.com/CalvoM/chip-8/internal/options"
)

var (
	errEmptyROM    = errors.New("ROM file is empty")
	errROMTooLarge = errors.New("ROM file does not fit into program memory")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file named by the program options. CHIP-8 ROMs are raw
// program images without a header, loaded at machine.ProgramStart.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than fits to detect oversized files without reading them completely
	data, err := io.ReadAll(io.LimitReader(file, machine.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes validates raw ROM data.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	switch {
	case len(data) == 0:
		return nil, errEmptyROM
	case len(data) > machine.MaxProgramSize:
		return nil, fmt.Errorf("%w: more than %d bytes", errROMTooLarge, machine.MaxProgramSize)
	}
	return data, nil
}
