// Package chip8 implements the CHIP-8 interpreter core: registers, memory,
// stack, timers, framebuffer and hexpad, plus the fetch/decode/execute
// step. It performs no I/O of its own; a host driver loads the program,
// paces execution, feeds input and presents the framebuffer.
package chip8

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
	"time"
)

const (
	// MemorySize is the full addressable memory, 4KB.
	MemorySize = 0x1000
	// LoadAddress is where program images are placed and where PC starts.
	LoadAddress = 0x200
	// MaxProgramSize is the largest loadable program image.
	MaxProgramSize = MemorySize - LoadAddress

	addressMask = 0x0fff
	stackSize   = 16
)

// ErrProgramTooLarge is returned by New for images over MaxProgramSize.
var ErrProgramTooLarge = errors.New("program image too large")

// Chip8 is a single interpreter instance. It is not safe for concurrent
// use; the host owns the per-frame call sequence.
type Chip8 struct {
	v     [16]uint8
	i     uint16
	pc    uint16
	sp    int
	stack [stackSize]uint16
	mem   [MemorySize]uint8

	delay uint8
	sound uint8

	fb  Framebuffer
	pad Hexpad

	waiting bool
	waitReg uint8

	rand *rand.Rand
}

// New builds an interpreter with the program image loaded at LoadAddress
// and the font table installed at address 0. Oversized images fail with
// ErrProgramTooLarge.
func New(program []byte) (*Chip8, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	c := new(Chip8)
	copy(c.mem[:len(fontData)], fontData[:])
	copy(c.mem[LoadAddress:], program)
	c.pc = LoadAddress
	c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	return c, nil
}

// Step runs a single fetch/decode/execute cycle. While the interpreter is
// waiting for a keypress it does nothing. An instruction word matching no
// known form returns a *DecodeFault naming the address and raw word; the
// only state advanced by then is the fetch itself.
func (c *Chip8) Step() error {
	if c.waiting {
		return nil
	}

	at := c.pc
	hi := c.fetch()
	lo := c.fetch()
	word := uint16(hi)<<8 | uint16(lo)

	in, ok := decode(word)
	if !ok {
		return &DecodeFault{Addr: at, Word: word}
	}

	c.exec(in)
	return nil
}

// Run calls Step n times, stopping at the first fault. Waiting steps still
// count toward n.
func (c *Chip8) Run(n int) error {
	for ; n > 0; n-- {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// TickTimers decrements the delay and sound timers, floored at zero. Hosts
// call it once per 60Hz frame.
func (c *Chip8) TickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// UpdateInput replaces the hexpad bitmap. If the interpreter is waiting
// for a keypress and at least one key transitioned to pressed, the wait
// ends and the lowest-numbered newly pressed key index lands in the
// remembered register.
func (c *Chip8) UpdateInput(bitmap uint16) {
	pressed := (bitmap ^ c.pad.Bitmap()) & bitmap
	if c.waiting && pressed != 0 {
		c.waiting = false
		c.regWrite(c.waitReg, uint8(bits.TrailingZeros16(pressed)))
	}
	c.pad.Update(bitmap)
}

// Framebuffer exposes the display state for presentation.
func (c *Chip8) Framebuffer() *Framebuffer {
	return &c.fb
}

// Pixels returns the framebuffer contents as a flat row-major slice.
func (c *Chip8) Pixels() []uint8 {
	return c.fb.Pixels()
}

// Size returns the fixed display dimensions.
func (c *Chip8) Size() (width, height int) {
	return DisplayWidth, DisplayHeight
}

// Sound reports whether the sound timer is running; the host decides what
// noise, if any, to make of it.
func (c *Chip8) Sound() bool {
	return c.sound > 0
}

// Seed reseeds the random source used by the Cxnn instruction.
func (c *Chip8) Seed(seed int64) {
	c.rand = rand.New(rand.NewSource(seed))
}

// fetch reads the byte at PC and advances PC by one, wrapped to 12 bits.
func (c *Chip8) fetch() uint8 {
	b := c.memRead(c.pc)
	c.pcSet(c.pc + 1)
	return b
}

// skip advances PC past the next instruction.
func (c *Chip8) skip() {
	c.pcSet(c.pc + 2)
}

func (c *Chip8) pcSet(addr uint16) {
	c.pc = addr & addressMask
}

func (c *Chip8) iSet(addr uint16) {
	c.i = addr & addressMask
}

func (c *Chip8) regRead(index uint8) uint8 {
	if index > 15 {
		panic(fmt.Errorf("register index out of range: %d", index))
	}
	return c.v[index]
}

func (c *Chip8) regWrite(index uint8, value uint8) {
	if index > 15 {
		panic(fmt.Errorf("register index out of range: %d", index))
	}
	c.v[index] = value
}

func (c *Chip8) vfSet(flag bool) {
	if flag {
		c.v[0xf] = 1
	} else {
		c.v[0xf] = 0
	}
}

func (c *Chip8) memRead(addr uint16) uint8 {
	if addr >= MemorySize {
		panic(fmt.Errorf("memory address out of range: 0x%04x", addr))
	}
	return c.mem[addr]
}

func (c *Chip8) memWrite(addr uint16, value uint8) {
	if addr >= MemorySize {
		panic(fmt.Errorf("memory address out of range: 0x%04x", addr))
	}
	c.mem[addr] = value
}

func (c *Chip8) push(addr uint16) {
	if c.sp >= stackSize {
		panic(fmt.Errorf("call stack overflow at depth %d", c.sp))
	}
	c.stack[c.sp] = addr
	c.sp++
}

func (c *Chip8) pop() uint16 {
	if c.sp <= 0 {
		panic(errors.New("call stack underflow"))
	}
	c.sp--
	return c.stack[c.sp]
}
