package main

import (
	"fmt"
	"sync"

	"github.com/jroimartin/gocui"

	"tc-chip8/common"
)

// Terminals deliver no key-up events, so a key counts as held for this
// many frames after its last press.
const keyHoldFrames = 8

// termKeys binds the 16 hexpad keys to the same 4x4 block the SDL keypad
// uses.
var termKeys = [16]rune{
	'0', '1', '2', '3',
	'q', 'w', 'e', 'r',
	'a', 's', 'd', 'f',
	'z', 'x', 'c', 'v',
}

// Term is a gocui front-end combining display and keypad in one device.
// The framebuffer is rendered with half-block runes, two pixel rows per
// text row. The gocui main loop runs in its own goroutine; painting goes
// through gui.Update and key handlers refresh the hold counters.
type Term struct {
	gui  *gocui.Gui
	done chan struct{}

	mu   sync.Mutex
	held [16]int
}

func NewTerm(width, height int) (*Term, error) {
	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("failed to create gui: %w", err)
	}

	t := &Term{gui: gui, done: make(chan struct{})}

	gui.SetManagerFunc(func(g *gocui.Gui) error {
		// One text row covers two pixel rows; +1 on each axis for the
		// view frame.
		if v, err := g.SetView("display", 0, 0, width+1, height/2+1); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Title = windowTitle
		}
		return nil
	})

	for i, key := range termKeys {
		index := i
		err = gui.SetKeybinding("", key, gocui.ModNone,
			func(*gocui.Gui, *gocui.View) error {
				t.press(index)
				return nil
			})
		if err != nil {
			gui.Close()
			return nil, err
		}
	}
	quit := func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }
	for _, key := range []gocui.Key{gocui.KeyEsc, gocui.KeyCtrlC} {
		if err := gui.SetKeybinding("", key, gocui.ModNone, quit); err != nil {
			gui.Close()
			return nil, err
		}
	}

	go func() {
		gui.MainLoop()
		close(t.done)
	}()
	return t, nil
}

func (t *Term) press(index int) {
	t.mu.Lock()
	t.held[index] = keyHoldFrames
	t.mu.Unlock()
}

// bitmap decays the hold counters by one frame and reports the keys still
// considered held.
func (t *Term) bitmap() uint16 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var bitmap uint16
	for i := range t.held {
		if t.held[i] > 0 {
			t.held[i]--
			bitmap |= 1 << i
		}
	}
	return bitmap
}

func (t *Term) Tick(m common.Machine) error {
	select {
	case <-t.done:
		return common.ErrShutdown
	default:
	}

	m.UpdateInput(t.bitmap())

	width, height := m.Size()
	pixels := m.Pixels()
	beeping := m.Sound()

	t.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View("display")
		if err != nil {
			return nil // Layout has not run yet.
		}
		v.Clear()
		line := make([]rune, width)
		for y := 0; y < height; y += 2 {
			for x := 0; x < width; x++ {
				top := pixels[y*width+x] != 0
				bottom := y+1 < height && pixels[(y+1)*width+x] != 0
				switch {
				case top && bottom:
					line[x] = '█'
				case top:
					line[x] = '▀'
				case bottom:
					line[x] = '▄'
				default:
					line[x] = ' '
				}
			}
			fmt.Fprintln(v, string(line))
		}
		if beeping {
			v.Title = windowTitle + " [beep]"
		} else {
			v.Title = windowTitle
		}
		return nil
	})
	return nil
}

func (t *Term) Cleanup() {
	t.gui.Close()
}
