package main

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"tc-chip8/common"
)

const windowTitle = "tc-chip8"

// Display presents the framebuffer in an SDL2 window through a streaming
// texture at the native resolution, letting the renderer upscale it to
// the window. The sound timer state is surfaced in the window title since
// audio output is out of scope.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	beeping  bool
}

// NewDisplay opens the window at scale times the framebuffer size.
func NewDisplay(width, height, scale int) (*Display, error) {
	runtime.LockOSThread() // Latch this goroutine to the same thread for SDL.

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to init SDL: %w", err)
	}

	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, int32(width*scale), int32(height*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	return &Display{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

func (d *Display) Tick(m common.Machine) error {
	width, height := m.Size()
	pixels := m.Pixels()

	buf, pitch, err := d.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("failed to lock texture: %w", err)
	}
	for y := 0; y < height; y++ {
		row := buf[y*pitch:]
		for x := 0; x < width; x++ {
			v := uint8(0)
			if pixels[y*width+x] != 0 {
				v = 0xff
			}
			row[x*4+0] = v
			row[x*4+1] = v
			row[x*4+2] = v
			row[x*4+3] = 0xff
		}
	}
	d.texture.Unlock()

	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear renderer: %w", err)
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return fmt.Errorf("failed to copy texture: %w", err)
	}
	d.renderer.Present()

	if beeping := m.Sound(); beeping != d.beeping {
		d.beeping = beeping
		title := windowTitle
		if beeping {
			title += " [beep]"
		}
		d.window.SetTitle(title)
	}
	return nil
}

func (d *Display) Cleanup() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.Quit()
}
