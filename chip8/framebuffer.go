package chip8

import "fmt"

// Display dimensions. This machine drives a square 60x60 monochrome panel
// rather than the more common 64x32 layout.
const (
	DisplayWidth  = 60
	DisplayHeight = 60
)

// Framebuffer is the monochrome pixel grid the draw instructions target.
// Coordinates are always pre-wrapped by the interpreter, so out-of-range
// access here means a bug in the core and panics.
type Framebuffer struct {
	pixels [DisplayWidth * DisplayHeight]uint8
}

func (fb *Framebuffer) checkBounds(x, y int) {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		panic(fmt.Errorf("pixel access outside legal region: (%d, %d)", x, y))
	}
}

// Pixel reports whether the pixel at (x, y) is lit.
func (fb *Framebuffer) Pixel(x, y int) bool {
	fb.checkBounds(x, y)
	return fb.pixels[y*DisplayWidth+x] != 0
}

// SetPixel turns the pixel at (x, y) on or off.
func (fb *Framebuffer) SetPixel(x, y int, on bool) {
	fb.checkBounds(x, y)
	v := uint8(0)
	if on {
		v = 1
	}
	fb.pixels[y*DisplayWidth+x] = v
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.pixels = [DisplayWidth * DisplayHeight]uint8{}
}

// Pixels returns a copy of the pixel grid as a flat row-major slice, one
// byte per pixel, 0 for off and 1 for on. Hosts copy this into whatever
// presentation surface they use.
func (fb *Framebuffer) Pixels() []uint8 {
	out := make([]uint8, len(fb.pixels))
	copy(out, fb.pixels[:])
	return out
}
