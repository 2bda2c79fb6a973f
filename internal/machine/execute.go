package machine

// instructionSize is the size of an instruction word in bytes.
const instructionSize = 2

// execute runs a decoded instruction. The program counter is only updated if
// the instruction completed, a failing instruction leaves the state untouched.
func (m *Machine) execute(ins Instruction, outcome *StepOutcome) error {
	r := &m.regs
	vx, vy := r.V[ins.X], r.V[ins.Y]
	next := r.PC + instructionSize

	switch ins.Op {
	case OpCls:
		m.display.Clear()
		outcome.Redraw = true

	case OpRet:
		address, err := r.pop()
		if err != nil {
			return err
		}
		next = address + instructionSize

	case OpJump:
		next = ins.NNN

	case OpCall:
		if err := r.push(r.PC); err != nil {
			return err
		}
		next = ins.NNN

	case OpLoadK:
		r.V[ins.X] = ins.KK

	case OpAddK:
		r.V[ins.X] = vx + ins.KK

	case OpLoadV:
		r.V[ins.X] = vy

	case OpOr:
		r.V[ins.X] = vx | vy

	case OpAnd:
		r.V[ins.X] = vx & vy

	case OpXor:
		r.V[ins.X] = vx ^ vy

	case OpAddV:
		sum := uint16(vx) + uint16(vy)
		r.V[ins.X] = byte(sum)
		r.setFlag(sum > 0xFF)

	case OpSub:
		r.V[ins.X] = vx - vy
		r.setFlag(vx > vy)

	case OpShr:
		r.V[ins.X] = vx >> 1
		r.setFlag(vx&0x01 != 0)

	case OpSubn:
		r.V[ins.X] = vy - vx
		r.setFlag(vy > vx)

	case OpShl:
		r.V[ins.X] = vx << 1
		r.setFlag(vx&0x80 != 0)

	case OpLoadI:
		r.I = ins.NNN

	case OpJumpV0:
		next = uint16(r.V[0]) + ins.NNN

	case OpRand:
		r.V[ins.X] = byte(m.random.Intn(256)) & ins.KK

	case OpDraw:
		if err := m.drawSprite(ins); err != nil {
			return err
		}
		outcome.Redraw = true

	case OpLoadDelay:
		r.V[ins.X] = r.DelayTimer

	case OpWaitKey:
		m.keys.clearEdges()
		m.state = AwaitingKey
		m.waitRegister = ins.X
		m.waitWord = ins.Word
		next = r.PC

	case OpSetDelay:
		r.DelayTimer = vx

	case OpSetSound:
		r.SoundTimer = vx

	case OpAddI:
		r.I += uint16(vx)

	case OpLoadGlyph:
		r.I = FontAddress + uint16(vx)*GlyphSize

	case OpStoreBCD:
		digits := []byte{vx / 100, vx / 10 % 10, vx % 10}
		if err := m.memory.WriteRange(r.I, digits); err != nil {
			return err
		}

	case OpStoreRegs:
		if err := m.memory.WriteRange(r.I, r.V[:ins.X+1]); err != nil {
			return err
		}

	case OpLoadRegs:
		data, err := m.memory.ReadRange(r.I, int(ins.X)+1)
		if err != nil {
			return err
		}
		copy(r.V[:], data)

	default:
		if !ins.Op.IsSkip() {
			outcome.DecodeError = &DecodeError{Address: r.PC, Opcode: ins.Word}
			break
		}
		if m.skipCondition(ins) {
			next += instructionSize
		}
	}

	r.PC = next
	return nil
}

// skipCondition evaluates the condition of a skip instruction.
func (m *Machine) skipCondition(ins Instruction) bool {
	vx, vy := m.regs.V[ins.X], m.regs.V[ins.Y]

	switch ins.Op {
	case OpSkipEqK:
		return vx == ins.KK
	case OpSkipNeK:
		return vx != ins.KK
	case OpSkipEqV:
		return vx == vy
	case OpSkipNeV:
		return vx != vy
	case OpSkipKey:
		return m.keys.IsPressed(int(vx))
	case OpSkipNoKey:
		return !m.keys.IsPressed(int(vx))
	default:
		return false
	}
}

// drawSprite XORs the n byte sprite at I onto the display at (Vx, Vy).
// VF is set if any lit pixel got turned off. Pixels outside of the display
// are dropped.
func (m *Machine) drawSprite(ins Instruction) error {
	sprite, err := m.memory.ReadRange(m.regs.I, int(ins.N))
	if err != nil {
		return err
	}

	x0, y0 := int(m.regs.V[ins.X]), int(m.regs.V[ins.Y])
	var collision bool
	for row, bits := range sprite {
		for bit := range 8 {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			if m.display.XORPixel(x0+bit, y0+row) {
				collision = true
			}
		}
	}

	m.regs.setFlag(collision)
	m.display.dirty = true
	return nil
}
