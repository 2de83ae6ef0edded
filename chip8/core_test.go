package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// mustNew builds an interpreter and fails the test on a load error.
func mustNew(t *testing.T, program []byte) *Chip8 {
	t.Helper()
	c, err := New(program)
	assert.NoError(t, err)
	return c
}

// loadWords builds an interpreter whose program image is the given
// instruction words, big-endian encoded.
func loadWords(t *testing.T, words ...uint16) *Chip8 {
	t.Helper()
	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}
	return mustNew(t, program)
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f()
}

func TestNew(t *testing.T) {
	program := []byte{0x12, 0x34, 0x56}
	c := mustNew(t, program)

	for i, b := range fontData {
		assert.Equal(t, b, c.mem[i])
	}
	for i, b := range program {
		assert.Equal(t, b, c.mem[LoadAddress+i])
	}
	assert.Equal(t, uint16(LoadAddress), c.pc)
	assert.Equal(t, 0, c.sp)
	assert.False(t, c.waiting)
}

func TestNewMaxSize(t *testing.T) {
	c := mustNew(t, make([]byte, MaxProgramSize))
	assert.Equal(t, uint16(LoadAddress), c.pc)
}

func TestNewTooLarge(t *testing.T) {
	_, err := New(make([]byte, MaxProgramSize+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}

func TestTickTimers(t *testing.T) {
	for _, start := range []uint8{0, 1, 7, 255} {
		c := mustNew(t, nil)
		c.delay = start
		c.sound = start

		for i := uint8(0); i < start; i++ {
			c.TickTimers()
		}
		assert.Equal(t, uint8(0), c.delay)
		assert.Equal(t, uint8(0), c.sound)

		// Further ticks stay floored at zero.
		for i := 0; i < 3; i++ {
			c.TickTimers()
		}
		assert.Equal(t, uint8(0), c.delay)
		assert.Equal(t, uint8(0), c.sound)
	}
}

func TestRunCountsWaitingSteps(t *testing.T) {
	// Fx0A then instructions that must not run while waiting.
	c := loadWords(t, 0xf10a, 0x6005, 0x6006)
	assert.NoError(t, c.Run(10))

	// Only the wait entered; nothing past it executed.
	assert.True(t, c.waiting)
	assert.Equal(t, uint16(LoadAddress+2), c.pc)
	assert.Equal(t, uint8(0), c.v[0])
}

func TestRunStopsAtFault(t *testing.T) {
	c := loadWords(t, 0x6005, 0x0123, 0x6106)
	err := c.Run(3)

	var fault *DecodeFault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(LoadAddress+2), fault.Addr)
	assert.Equal(t, uint16(0x0123), fault.Word)
	// The instruction after the fault never ran.
	assert.Equal(t, uint8(0), c.v[1])
}

func TestDecodeFaultAdvancesFetchOnly(t *testing.T) {
	c := loadWords(t, 0x0123)
	c.v[2] = 0x55
	err := c.Step()

	var fault *DecodeFault
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, uint16(LoadAddress), fault.Addr)
	assert.Equal(t, uint16(0x0123), fault.Word)
	assert.Equal(t, "invalid instruction: [0x200] 0x0123", err.Error())

	assert.Equal(t, uint16(LoadAddress+2), c.pc)
	assert.Equal(t, uint8(0x55), c.v[2])
	assert.Equal(t, uint16(0), c.i)
	assert.Equal(t, 0, c.sp)
}

func TestUpdateInputWaitRoundTrip(t *testing.T) {
	c := loadWords(t, 0xf70a)
	assert.NoError(t, c.Step())
	assert.True(t, c.waiting)

	// Steps while waiting are no-ops.
	pc := c.pc
	assert.NoError(t, c.Step())
	assert.Equal(t, pc, c.pc)

	// A newly pressed key ends the wait and lands in v7.
	c.UpdateInput(1 << 5)
	assert.False(t, c.waiting)
	assert.Equal(t, uint8(5), c.v[7])
	assert.Equal(t, uint16(1<<5), c.pad.Bitmap())

	// Further input changes while not waiting touch no registers.
	c.v[7] = 0xaa
	c.UpdateInput(1 << 9)
	assert.Equal(t, uint8(0xaa), c.v[7])
	assert.Equal(t, uint16(1<<9), c.pad.Bitmap())
}

func TestUpdateInputLowestNewKeyWins(t *testing.T) {
	c := loadWords(t, 0xf00a)
	assert.NoError(t, c.Step())

	c.UpdateInput(1<<12 | 1<<3 | 1<<8)
	assert.False(t, c.waiting)
	assert.Equal(t, uint8(3), c.v[0])
}

func TestUpdateInputHeldKeysAreNotNew(t *testing.T) {
	c := mustNew(t, nil)
	c.UpdateInput(1 << 4)

	c.waiting = true
	c.waitReg = 1

	// Key 4 stays held; only key 6 is a 0->1 transition.
	c.UpdateInput(1<<4 | 1<<6)
	assert.False(t, c.waiting)
	assert.Equal(t, uint8(6), c.v[1])
}

func TestUpdateInputNoTransitionKeepsWaiting(t *testing.T) {
	c := mustNew(t, nil)
	c.UpdateInput(1 << 2)
	c.waiting = true
	c.waitReg = 0

	// Releasing a key is not a press.
	c.UpdateInput(0)
	assert.True(t, c.waiting)
	assert.Equal(t, uint8(0), c.v[0])
}

func TestStackContract(t *testing.T) {
	c := mustNew(t, nil)
	for depth := 0; depth < 16; depth++ {
		c.push(uint16(0x200 + depth))
	}
	assertPanics(t, func() { c.push(0x300) })

	for depth := 15; depth >= 0; depth-- {
		assert.Equal(t, uint16(0x200+depth), c.pop())
	}
	assertPanics(t, func() { c.pop() })
}

func TestSound(t *testing.T) {
	c := mustNew(t, nil)
	assert.False(t, c.Sound())
	c.sound = 2
	assert.True(t, c.Sound())
	c.TickTimers()
	assert.True(t, c.Sound())
	c.TickTimers()
	assert.False(t, c.Sound())
}

func TestSize(t *testing.T) {
	c := mustNew(t, nil)
	w, h := c.Size()
	assert.Equal(t, DisplayWidth, w)
	assert.Equal(t, DisplayHeight, h)
}
