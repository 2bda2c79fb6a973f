package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Operands(t *testing.T) {
	ins := Decode(0xD123)

	assert.Equal(t, uint16(0xD123), ins.Word)
	assert.Equal(t, uint8(0xD), ins.Class)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0x3), ins.N)
	assert.Equal(t, uint16(0x123), ins.NNN)
	assert.Equal(t, uint8(0x23), ins.KK)
	assert.Equal(t, OpDraw, ins.Op)
}

func TestDecode_Variants(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Op
	}{
		{"CLS", 0x00E0, OpCls},
		{"RET", 0x00EE, OpRet},
		{"SYS is unknown", 0x0123, OpUnknown},
		{"JP addr", 0x1234, OpJump},
		{"CALL addr", 0x2345, OpCall},
		{"SE Vx, byte", 0x3A12, OpSkipEqK},
		{"SNE Vx, byte", 0x4A12, OpSkipNeK},
		{"SE Vx, Vy", 0x5AB0, OpSkipEqV},
		{"5xy1 is unknown", 0x5AB1, OpUnknown},
		{"LD Vx, byte", 0x6A12, OpLoadK},
		{"ADD Vx, byte", 0x7A12, OpAddK},
		{"LD Vx, Vy", 0x8AB0, OpLoadV},
		{"OR Vx, Vy", 0x8AB1, OpOr},
		{"AND Vx, Vy", 0x8AB2, OpAnd},
		{"XOR Vx, Vy", 0x8AB3, OpXor},
		{"ADD Vx, Vy", 0x8AB4, OpAddV},
		{"SUB Vx, Vy", 0x8AB5, OpSub},
		{"SHR Vx", 0x8AB6, OpShr},
		{"SUBN Vx, Vy", 0x8AB7, OpSubn},
		{"SHL Vx", 0x8ABE, OpShl},
		{"8xy8 is unknown", 0x8AB8, OpUnknown},
		{"SNE Vx, Vy", 0x9AB0, OpSkipNeV},
		{"9xy1 is unknown", 0x9AB1, OpUnknown},
		{"LD I, addr", 0xA123, OpLoadI},
		{"JP V0, addr", 0xB123, OpJumpV0},
		{"RND Vx, byte", 0xCA12, OpRand},
		{"DRW Vx, Vy, n", 0xDAB5, OpDraw},
		{"SKP Vx", 0xEA9E, OpSkipKey},
		{"SKNP Vx", 0xEAA1, OpSkipNoKey},
		{"Ex00 is unknown", 0xEA00, OpUnknown},
		{"LD Vx, DT", 0xFA07, OpLoadDelay},
		{"LD Vx, K", 0xFA0A, OpWaitKey},
		{"LD DT, Vx", 0xFA15, OpSetDelay},
		{"LD ST, Vx", 0xFA18, OpSetSound},
		{"ADD I, Vx", 0xFA1E, OpAddI},
		{"LD F, Vx", 0xFA29, OpLoadGlyph},
		{"LD B, Vx", 0xFA33, OpStoreBCD},
		{"LD [I], Vx", 0xFA55, OpStoreRegs},
		{"LD Vx, [I]", 0xFA65, OpLoadRegs},
		{"FxFF is unknown", 0xFFFF, OpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.word).Op)
		})
	}
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "cls", OpCls.String())
	assert.Equal(t, "drw", OpDraw.String())
	assert.Equal(t, "sknp", OpSkipNoKey.String())
	assert.Equal(t, "unknown", OpUnknown.String())
	assert.Equal(t, "unknown", Op(200).String())
}

func TestOp_IsSkip(t *testing.T) {
	assert.True(t, OpSkipEqK.IsSkip())
	assert.True(t, OpSkipNoKey.IsSkip())
	assert.False(t, OpJump.IsSkip())
	assert.False(t, OpUnknown.IsSkip())
}
