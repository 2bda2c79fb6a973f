// Package options contains the program options.
package options

// Default values of the interpreter options.
const (
	DefaultSpeed = 700 // steps per second
	MaxSpeed     = 100000
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"ROM file to run"`
}

// Flags contains behavior options.
type Flags struct {
	Speed int   `flag:"speed" usage:"instructions executed per second" default:"700"`
	Steps int   `flag:"steps" usage:"run headless for the given number of steps and exit"`
	Seed  int64 `flag:"seed" usage:"seed for the random number generator (default: time based)"`
	Trace bool  `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug bool  `flag:"debug" usage:"enable debug logging"`
	Quiet bool  `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}

// Headless returns whether the interpreter runs without terminal input and output.
func (p Program) Headless() bool {
	return p.Steps > 0
}
