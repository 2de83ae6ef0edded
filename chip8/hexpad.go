package chip8

import "fmt"

// Hexpad is the 16-key input pad, kept as a bitmap where bit k set means
// key k is currently held.
type Hexpad struct {
	bitmap uint16
}

// Bitmap returns the current pressed-state bitmap.
func (h *Hexpad) Bitmap() uint16 {
	return h.bitmap
}

// Pressed reports whether key index (0..15) is held.
func (h *Hexpad) Pressed(index uint8) bool {
	if index > 15 {
		panic(fmt.Errorf("hexpad key index out of range: %d", index))
	}
	return h.bitmap&(1<<index) != 0
}

// Update replaces the pressed-state bitmap.
func (h *Hexpad) Update(bitmap uint16) {
	h.bitmap = bitmap
}
