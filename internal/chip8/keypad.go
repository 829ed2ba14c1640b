package chip8

// NumKeys is the number of keys on the hexpad.
const NumKeys = 16

// Keypad holds the press state of the 16-key hexpad. The input collaborator
// writes it between steps; the executor only reads it.
type Keypad struct {
	pressed [NumKeys]bool
}

// Set records the press state of a hexpad key. Key values outside 0-F are
// ignored.
func (k *Keypad) Set(key uint8, down bool) {
	if key < NumKeys {
		k.pressed[key] = down
	}
}

// Pressed reports whether a hexpad key is currently down. Key values
// outside 0-F report false.
func (k *Keypad) Pressed(key uint8) bool {
	return key < NumKeys && k.pressed[key]
}

// FirstPressed returns the lowest hexpad key currently down, used to
// complete a pending LD Vx, K wait.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for key := uint8(0); key < NumKeys; key++ {
		if k.pressed[key] {
			return key, true
		}
	}
	return 0, false
}
