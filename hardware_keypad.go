package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"tc-chip8/common"
)

// keypadScancodes maps the 16 logical hexpad keys, top-left down to
// bottom-right, onto a 4x4 block of physical keys.
var keypadScancodes = [16]sdl.Scancode{
	sdl.SCANCODE_0, sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3,
	sdl.SCANCODE_Q, sdl.SCANCODE_W, sdl.SCANCODE_E, sdl.SCANCODE_R,
	sdl.SCANCODE_A, sdl.SCANCODE_S, sdl.SCANCODE_D, sdl.SCANCODE_F,
	sdl.SCANCODE_Z, sdl.SCANCODE_X, sdl.SCANCODE_C, sdl.SCANCODE_V,
}

// Keypad reads the SDL keyboard state once per frame and delivers it to
// the machine as the hexpad bitmap. It also owns the SDL event queue, so
// window close and Escape requests surface here.
type Keypad struct{}

func NewKeypad() *Keypad {
	return &Keypad{}
}

func (k *Keypad) Tick(m common.Machine) error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			return common.ErrShutdown
		case *sdl.KeyboardEvent:
			if t.Type == sdl.KEYDOWN && t.Keysym.Sym == sdl.K_ESCAPE {
				return common.ErrShutdown
			}
		}
	}

	state := sdl.GetKeyboardState()
	var bitmap uint16
	for i, sc := range keypadScancodes {
		if state[sc] != 0 {
			bitmap |= 1 << i
		}
	}
	m.UpdateInput(bitmap)
	return nil
}

func (k *Keypad) Cleanup() {}
