// Package mem provides small byte-slice helpers shared by the sponge and
// digest surfaces.
package mem

import (
	"crypto/subtle"
	"slices"
)

// XOR XORs a and b into dst without branching on byte values. Full rate
// blocks go through subtle.XORBytes, whose SIMD path pays off at that size;
// short absorb tails use a scalar loop, which beats the call overhead at 16
// bytes and under.
func XOR(dst, a, b []byte) {
	if len(dst) <= 16 {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
		return
	}
	subtle.XORBytes(dst, a, b)
}

// SliceForAppend extends in by n bytes and returns the extended slice along
// with the n-byte tail, for append-style digest APIs. If in has capacity for
// the tail, no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
