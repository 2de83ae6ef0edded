package main

import "tc-chip8/common"

// displayTypes builds the device set for a display front-end. Input
// devices come before display devices so that each frame delivers input
// before the framebuffer is read for presentation.
var displayTypes = map[string]func(width, height, scale int) ([]common.Device, error){
	"sdl": func(width, height, scale int) ([]common.Device, error) {
		display, err := NewDisplay(width, height, scale)
		if err != nil {
			return nil, err
		}
		return []common.Device{NewKeypad(), display}, nil
	},
	"term": func(width, height, scale int) ([]common.Device, error) {
		term, err := NewTerm(width, height)
		if err != nil {
			return nil, err
		}
		return []common.Device{term}, nil
	},
}

var displayDescriptions = map[string]string{
	"sdl":  "SDL2 window, hexpad on the 0123/QWER/ASDF/ZXCV keys",
	"term": "Terminal front-end (gocui), same key layout, Esc quits",
}
