package chip8

import "fmt"

// opKind enumerates the 26 instruction forms. Decoding up front into a
// tagged value keeps the execute step a single flat switch instead of
// nested nibble matching.
type opKind int

const (
	opClear      opKind = iota // 00E0
	opReturn                   // 00EE
	opJump                     // 1nnn
	opCall                     // 2nnn
	opSkipEqImm                // 3xnn
	opSkipNeImm                // 4xnn
	opSkipEqReg                // 5xy0
	opLoadImm                  // 6xnn
	opAddImm                   // 7xnn
	opMove                     // 8xy0
	opOr                       // 8xy1
	opAnd                      // 8xy2
	opXor                      // 8xy3
	opAddCarry                 // 8xy4
	opSubBorrow                // 8xy5
	opShiftRight               // 8xy6
	opSubReverse               // 8xy7
	opShiftLeft                // 8xyE
	opSkipNeReg                // 9xy0
	opLoadI                    // Annn
	opJumpV0                   // Bnnn
	opRandom                   // Cxnn
	opDraw                     // Dxyn
	opSkipKey                  // Ex9E
	opSkipNoKey                // ExA1
	opReadDelay                // Fx07
	opWaitKey                  // Fx0A
	opSetDelay                 // Fx15
	opSetSound                 // Fx18
	opAddI                     // Fx1E
	opFontGlyph                // Fx29
	opStoreBCD                 // Fx33
	opStoreRegs                // Fx55
	opLoadRegs                 // Fx65
)

// instruction is a decoded instruction word. Every operand field is carried
// pre-masked to its width, so execution never sees an out-of-range index.
type instruction struct {
	kind opKind
	nnn  uint16 // low 12 bits
	nn   uint8  // low 8 bits
	n    uint8  // low 4 bits
	x    uint8  // bits 8-11
	y    uint8  // bits 4-7
}

// DecodeFault reports an instruction word that matches no known form,
// identifying the address it was fetched from and the raw word.
type DecodeFault struct {
	Addr uint16
	Word uint16
}

func (f *DecodeFault) Error() string {
	return fmt.Sprintf("invalid instruction: [0x%03x] 0x%04x", f.Addr, f.Word)
}

// decode splits an instruction word into its operand fields and resolves
// the instruction form. The second return is false for words matching no
// form, including the legacy machine-call form 0nnn.
func decode(word uint16) (instruction, bool) {
	in := instruction{
		nnn: word & 0x0fff,
		nn:  uint8(word),
		n:   uint8(word & 0x000f),
		x:   uint8(word >> 8 & 0xf),
		y:   uint8(word >> 4 & 0xf),
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			in.kind = opClear
		case 0x00ee:
			in.kind = opReturn
		default:
			return in, false
		}
	case 0x1:
		in.kind = opJump
	case 0x2:
		in.kind = opCall
	case 0x3:
		in.kind = opSkipEqImm
	case 0x4:
		in.kind = opSkipNeImm
	case 0x5:
		if in.n != 0 {
			return in, false
		}
		in.kind = opSkipEqReg
	case 0x6:
		in.kind = opLoadImm
	case 0x7:
		in.kind = opAddImm
	case 0x8:
		switch in.n {
		case 0x0:
			in.kind = opMove
		case 0x1:
			in.kind = opOr
		case 0x2:
			in.kind = opAnd
		case 0x3:
			in.kind = opXor
		case 0x4:
			in.kind = opAddCarry
		case 0x5:
			in.kind = opSubBorrow
		case 0x6:
			in.kind = opShiftRight
		case 0x7:
			in.kind = opSubReverse
		case 0xe:
			in.kind = opShiftLeft
		default:
			return in, false
		}
	case 0x9:
		if in.n != 0 {
			return in, false
		}
		in.kind = opSkipNeReg
	case 0xa:
		in.kind = opLoadI
	case 0xb:
		in.kind = opJumpV0
	case 0xc:
		in.kind = opRandom
	case 0xd:
		in.kind = opDraw
	case 0xe:
		switch in.nn {
		case 0x9e:
			in.kind = opSkipKey
		case 0xa1:
			in.kind = opSkipNoKey
		default:
			return in, false
		}
	case 0xf:
		switch in.nn {
		case 0x07:
			in.kind = opReadDelay
		case 0x0a:
			in.kind = opWaitKey
		case 0x15:
			in.kind = opSetDelay
		case 0x18:
			in.kind = opSetSound
		case 0x1e:
			in.kind = opAddI
		case 0x29:
			in.kind = opFontGlyph
		case 0x33:
			in.kind = opStoreBCD
		case 0x55:
			in.kind = opStoreRegs
		case 0x65:
			in.kind = opLoadRegs
		default:
			return in, false
		}
	}
	return in, true
}
