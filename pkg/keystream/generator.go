package keystream

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

// SeedSize is the number of seed bytes a Generator consumes.
const SeedSize = 16

const numRegisters = 5

var ErrInvalidSeed = errors.New("keystream: seed must be exactly 16 bytes")

var _ cipher.Stream = (*Generator)(nil)

// Generator is a combiner of five linear feedback shift registers. Every
// register is clocked on every tick and the output bit is the XOR of their
// least significant bits.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	lfsr [numRegisters]uint32
	tap  [numRegisters]uint32
}

// New seeds a Generator. The seed is split into the initial register
// contents (17, 18, 17, 21 and 20 bits) followed by five 6-bit indices into
// the tap table.
func New(seed []byte) (*Generator, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeed, len(seed))
	}

	s := make([]uint32, SeedSize)
	for i, b := range seed {
		s[i] = uint32(b)
	}

	g := &Generator{}
	g.lfsr[0] = s[0]<<9 | s[1]<<1 | s[2]>>7
	g.lfsr[1] = (s[2]&127)<<11 | s[3]<<3 | s[4]>>5
	g.lfsr[2] = (s[4]&7)<<14 | s[5]<<6 | s[6]>>2
	g.lfsr[3] = (s[6]&3)<<19 | s[7]<<11 | s[8]<<3 | s[9]>>5
	g.lfsr[4] = (s[9]&31)<<18 | s[10]<<10 | s[11]<<2 | s[12]>>6

	g.tap[0] = taps[0][s[12]&63]
	g.tap[1] = taps[1][s[13]>>2]
	g.tap[2] = taps[2][(s[13]&3)<<4|s[14]>>4]
	g.tap[3] = taps[3][(s[14]&15)<<2|s[15]>>6]
	g.tap[4] = taps[4][s[15]&63]

	// A zero register never leaves zero.
	for i := range g.lfsr {
		if g.lfsr[i] == 0 {
			g.lfsr[i] = 1
		}
	}

	return g, nil
}

// NextBit clocks every register once and returns the combined output bit.
//
// Images produced by earlier releases were masked with this always-clock
// schedule; gating the clock on the bit-4 majority would break them.
func (g *Generator) NextBit() byte {
	var out uint32
	for i := range g.lfsr {
		if g.lfsr[i]&1 == 1 {
			g.lfsr[i] = (g.lfsr[i] >> 1) ^ g.tap[i]
		} else {
			g.lfsr[i] >>= 1
		}
		out ^= g.lfsr[i] & 1
	}
	return byte(out)
}

// NextByte packs eight output bits, most significant first.
func (g *Generator) NextByte() byte {
	var b byte
	for i := 0; i < 8; i++ {
		b = b<<1 | g.NextBit()
	}
	return b
}

// XORKeyStream XORs each byte of src with the next keystream byte and writes
// the result to dst. It panics if dst is shorter than src, like every other
// cipher.Stream.
func (g *Generator) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("keystream: output smaller than input")
	}
	for i, b := range src {
		dst[i] = b ^ g.NextByte()
	}
}
