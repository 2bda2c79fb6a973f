package machine

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Op identifies a decoded instruction variant.
type Op uint8

// Instruction variants, named after the common CHIP-8 mnemonics.
const (
	OpUnknown  Op = iota
	OpCls         // 00E0
	OpRet         // 00EE
	OpJump        // 1nnn
	OpCall        // 2nnn
	OpSkipEqK     // 3xkk
	OpSkipNeK     // 4xkk
	OpSkipEqV     // 5xy0
	OpLoadK       // 6xkk
	OpAddK        // 7xkk
	OpLoadV       // 8xy0
	OpOr          // 8xy1
	OpAnd         // 8xy2
	OpXor         // 8xy3
	OpAddV        // 8xy4
	OpSub         // 8xy5
	OpShr         // 8xy6
	OpSubn        // 8xy7
	OpShl         // 8xyE
	OpSkipNeV     // 9xy0
	OpLoadI       // Annn
	OpJumpV0      // Bnnn
	OpRand        // Cxkk
	OpDraw        // Dxyn
	OpSkipKey     // Ex9E
	OpSkipNoKey   // ExA1
	OpLoadDelay   // Fx07
	OpWaitKey     // Fx0A
	OpSetDelay    // Fx15
	OpSetSound    // Fx18
	OpAddI        // Fx1E
	OpLoadGlyph   // Fx29
	OpStoreBCD    // Fx33
	OpStoreRegs   // Fx55
	OpLoadRegs    // Fx65
)

// variants maps the fixed bits of each opcode table entry to its variant.
var variants = map[uint16]Op{
	0x00E0: OpCls,
	0x00EE: OpRet,
	0x1000: OpJump,
	0x2000: OpCall,
	0x3000: OpSkipEqK,
	0x4000: OpSkipNeK,
	0x5000: OpSkipEqV,
	0x6000: OpLoadK,
	0x7000: OpAddK,
	0x8000: OpLoadV,
	0x8001: OpOr,
	0x8002: OpAnd,
	0x8003: OpXor,
	0x8004: OpAddV,
	0x8005: OpSub,
	0x8006: OpShr,
	0x8007: OpSubn,
	0x800E: OpShl,
	0x9000: OpSkipNeV,
	0xA000: OpLoadI,
	0xB000: OpJumpV0,
	0xC000: OpRand,
	0xD000: OpDraw,
	0xE09E: OpSkipKey,
	0xE0A1: OpSkipNoKey,
	0xF007: OpLoadDelay,
	0xF00A: OpWaitKey,
	0xF015: OpSetDelay,
	0xF018: OpSetSound,
	0xF01E: OpAddI,
	0xF029: OpLoadGlyph,
	0xF033: OpStoreBCD,
	0xF055: OpStoreRegs,
	0xF065: OpLoadRegs,
}

// opInstructions holds the opcode table instruction of every variant.
var opInstructions = func() map[Op]*chip8.Instruction {
	instructions := make(map[Op]*chip8.Instruction, len(variants))
	for _, opcodes := range chip8.Opcodes {
		for _, opcode := range opcodes {
			if op, ok := variants[opcode.Info.Value]; ok {
				instructions[op] = opcode.Instruction
			}
		}
	}
	return instructions
}()

// String returns the mnemonic of the instruction variant.
func (o Op) String() string {
	if ins, ok := opInstructions[o]; ok {
		return ins.Name
	}
	return "unknown"
}

// IsSkip returns whether the variant conditionally skips the next instruction.
func (o Op) IsSkip() bool {
	ins, ok := opInstructions[o]
	return ok && chip8.SkipInstructions.Contains(ins.Name)
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Word  uint16
	Op    Op
	Class uint8  // bits 12-15
	X     uint8  // bits 8-11
	Y     uint8  // bits 4-7
	N     uint8  // bits 0-3
	NNN   uint16 // bits 0-11
	KK    uint8  // bits 0-7
}

// Decode splits an instruction word into its operands and identifies the variant.
// Words that do not match any instruction decode to OpUnknown.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word:  word,
		Class: uint8(word >> 12),
		X:     uint8(word>>8) & 0x0F,
		Y:     uint8(word>>4) & 0x0F,
		N:     uint8(word) & 0x0F,
		NNN:   word & 0x0FFF,
		KK:    uint8(word),
	}
	ins.Op = decodeOp(word)
	return ins
}

// decodeOp finds the variant of a word in the opcode table. Table entries
// without a variant, and words without an entry, decode to OpUnknown.
func decodeOp(word uint16) Op {
	for _, opcode := range chip8.Opcodes[int(word>>12)] {
		if opcode.Info.Mask&word == opcode.Info.Value {
			return variants[opcode.Info.Value]
		}
	}
	return OpUnknown
}
