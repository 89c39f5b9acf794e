// Package keccak implements the Keccak-f[1600] permutation underlying SHA-3.
//
// The round loop is rolled rather than unrolled: a single loop body runs 24
// times. Rotation amounts are literal constants at every call site, so they
// compile to constant rotations, and every memory access is indexed by loop
// induction variables. Nothing in the permutation branches on or indexes by
// state content.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rc stores the round constants for the iota step.
var rc = [24]uint64{ //nolint:gochecknoglobals // round constants
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
// The state is interpreted as 25 little-endian uint64 lanes in x+5y order.
func F1600(state *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8 : i*8+8])
	}

	permute(&a)

	for i := range a {
		binary.LittleEndian.PutUint64(state[i*8:i*8+8], a[i])
	}
}

func permute(a *[25]uint64) {
	var b [25]uint64

	for round := range 24 {
		// Theta
		var c [5]uint64
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// Rho and pi, fused: b[y, 2x+3y] = rotl64(a[x, y], rho[x, y]),
		// with the rho offsets (reduced mod 64) as constant rotations.
		b[0] = a[0]
		b[1] = bits.RotateLeft64(a[6], 44)
		b[2] = bits.RotateLeft64(a[12], 43)
		b[3] = bits.RotateLeft64(a[18], 21)
		b[4] = bits.RotateLeft64(a[24], 14)
		b[5] = bits.RotateLeft64(a[3], 28)
		b[6] = bits.RotateLeft64(a[9], 20)
		b[7] = bits.RotateLeft64(a[10], 3)
		b[8] = bits.RotateLeft64(a[16], 45)
		b[9] = bits.RotateLeft64(a[22], 61)
		b[10] = bits.RotateLeft64(a[1], 1)
		b[11] = bits.RotateLeft64(a[7], 6)
		b[12] = bits.RotateLeft64(a[13], 25)
		b[13] = bits.RotateLeft64(a[19], 8)
		b[14] = bits.RotateLeft64(a[20], 18)
		b[15] = bits.RotateLeft64(a[4], 27)
		b[16] = bits.RotateLeft64(a[5], 36)
		b[17] = bits.RotateLeft64(a[11], 10)
		b[18] = bits.RotateLeft64(a[17], 15)
		b[19] = bits.RotateLeft64(a[23], 56)
		b[20] = bits.RotateLeft64(a[2], 62)
		b[21] = bits.RotateLeft64(a[8], 55)
		b[22] = bits.RotateLeft64(a[14], 39)
		b[23] = bits.RotateLeft64(a[15], 41)
		b[24] = bits.RotateLeft64(a[21], 2)

		// Chi
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// Iota
		a[0] ^= rc[round]
	}
}
