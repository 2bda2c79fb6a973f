package machine

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Keypad is the input latch holding the pressed state of the 16 keys.
// Besides the current state it latches press edges, which resolve a pending key wait.
type Keypad struct {
	pressed [KeyCount]bool
	edges   uint16 // bit n set when key n went from released to pressed
}

// SetPressed updates the state of a key.
func (k *Keypad) SetPressed(index int, pressed bool) error {
	if index < 0 || index >= KeyCount {
		return ErrInvalidKey
	}
	if pressed && !k.pressed[index] {
		k.edges |= 1 << index
	}
	k.pressed[index] = pressed
	return nil
}

// IsPressed returns whether the key is pressed. Indices outside of the keypad
// are reported as released.
func (k *Keypad) IsPressed(index int) bool {
	if index < 0 || index >= KeyCount {
		return false
	}
	return k.pressed[index]
}

// clearEdges discards all latched press edges.
func (k *Keypad) clearEdges() {
	k.edges = 0
}

// takeEdge returns the lowest key index that was pressed since the last
// clearEdges call and clears all latched edges.
func (k *Keypad) takeEdge() (int, bool) {
	if k.edges == 0 {
		return 0, false
	}
	for i := range KeyCount {
		if k.edges&(1<<i) != 0 {
			k.edges = 0
			return i, true
		}
	}
	return 0, false
}
