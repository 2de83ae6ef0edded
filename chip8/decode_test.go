package chip8

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeForms(t *testing.T) {
	tests := []struct {
		word uint16
		kind opKind
	}{
		{0x00e0, opClear},
		{0x00ee, opReturn},
		{0x1abc, opJump},
		{0x2abc, opCall},
		{0x3144, opSkipEqImm},
		{0x4144, opSkipNeImm},
		{0x5120, opSkipEqReg},
		{0x6144, opLoadImm},
		{0x7144, opAddImm},
		{0x8120, opMove},
		{0x8121, opOr},
		{0x8122, opAnd},
		{0x8123, opXor},
		{0x8124, opAddCarry},
		{0x8125, opSubBorrow},
		{0x8126, opShiftRight},
		{0x8127, opSubReverse},
		{0x812e, opShiftLeft},
		{0x9120, opSkipNeReg},
		{0xaabc, opLoadI},
		{0xbabc, opJumpV0},
		{0xc144, opRandom},
		{0xd125, opDraw},
		{0xe19e, opSkipKey},
		{0xe1a1, opSkipNoKey},
		{0xf107, opReadDelay},
		{0xf10a, opWaitKey},
		{0xf115, opSetDelay},
		{0xf118, opSetSound},
		{0xf11e, opAddI},
		{0xf129, opFontGlyph},
		{0xf133, opStoreBCD},
		{0xf155, opStoreRegs},
		{0xf165, opLoadRegs},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%04x", tt.word), func(t *testing.T) {
			in, ok := decode(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, in.kind)
		})
	}
}

func TestDecodeFields(t *testing.T) {
	in, ok := decode(0xd7e5)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x7e5), in.nnn)
	assert.Equal(t, uint8(0xe5), in.nn)
	assert.Equal(t, uint8(0x5), in.n)
	assert.Equal(t, uint8(0x7), in.x)
	assert.Equal(t, uint8(0xe), in.y)
}

func TestDecodeInvalid(t *testing.T) {
	invalid := []uint16{
		0x0000, // 0nnn machine call, unsupported
		0x0123,
		0x00e1,
		0x00fe,
		0x5121, // 5xy? with nonzero low nibble
		0x8128,
		0x812f,
		0x9121,
		0xe19f,
		0xe100,
		0xf100,
		0xf10b,
		0xf166,
		0xf1ff,
	}
	for _, word := range invalid {
		word := word
		t.Run(fmt.Sprintf("%04x", word), func(t *testing.T) {
			_, ok := decode(word)
			assert.False(t, ok)
		})
	}
}
