// Package nanosha3 implements SHA-3-256 as specified in FIPS 202.
//
// The implementation is built for constrained and side-channel-sensitive
// environments: no code path reachable from the public surface allocates on
// the heap, the permutation's round loop is rolled, and execution time
// depends only on input length, never on input content.
package nanosha3

import (
	"encoding/hex"
	"errors"

	"github.com/codahale/nanosha3/internal/keccak"
	"github.com/codahale/nanosha3/internal/mem"
)

const (
	// Size is the size, in bytes, of a SHA-3-256 digest.
	Size = 32

	// BlockSize is the sponge rate, in bytes: (1600 - 2*256) / 8.
	BlockSize = rate

	rate = 136

	// domain is the SHA-3 domain separation byte, XORed at the first
	// padding position.
	domain = 0x06
)

// Sum256 computes the SHA-3-256 digest of data in one shot.
func Sum256(data []byte) [Size]byte {
	var s Sponge
	s.Absorb(data)
	return s.Finalize()
}

// A Sponge is a Keccak sponge specialized to SHA-3-256 parameters: a rate of
// 136 bytes, a capacity of 64 bytes, and pad10*1 padding with the SHA-3
// domain byte. The zero value is ready for use.
type Sponge struct {
	state     [200]byte
	idx       int
	finalized bool
}

// Absorb updates the sponge's state with the given data, running the
// permutation as the rate is exhausted. Absorb panics if the sponge has been
// finalized.
func (s *Sponge) Absorb(b []byte) {
	if s.finalized {
		panic("nanosha3: absorb after finalize")
	}

	for len(b) > 0 {
		remain := min(len(b), rate-s.idx)
		dst := s.state[s.idx : s.idx+remain]
		mem.XOR(dst, dst, b[:remain])
		s.idx += remain
		if s.idx == rate {
			s.permute()
		}
		b = b[remain:]
	}
}

// Finalize pads the last rate block, runs the permutation a final time, and
// returns the first 32 bytes of the state as the digest. Once finalized, the
// sponge accepts no further input. Finalize panics if called twice.
func (s *Sponge) Finalize() [Size]byte {
	if s.finalized {
		panic("nanosha3: finalize after finalize")
	}

	// pad10*1: the domain byte carries the leading 1 bit, the trailer the
	// final one. When idx == rate-1 both XORs land on the same byte,
	// yielding 0x86, which is the correct single-byte padding.
	s.state[s.idx] ^= domain
	s.state[rate-1] ^= 0x80
	s.permute()
	s.finalized = true

	return [Size]byte(s.state[:Size])
}

func (s *Sponge) permute() {
	keccak.F1600(&s.state)
	s.idx = 0
}

func (s *Sponge) String() string {
	return hex.EncodeToString(s.state[:])
}

// marshaledSize is the 200-byte state plus the rate index and the finalized
// flag.
const marshaledSize = 202

// AppendBinary appends the sponge's state to b.
func (s *Sponge) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, s.state[:]...)
	b = append(b, byte(s.idx))
	if s.finalized {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	return b, nil
}

// MarshalBinary returns the sponge's state as a byte slice.
func (s *Sponge) MarshalBinary() (data []byte, err error) {
	return s.AppendBinary(make([]byte, 0, marshaledSize))
}

// UnmarshalBinary restores a state previously produced by MarshalBinary.
func (s *Sponge) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errors.New("nanosha3: invalid state length")
	}
	idx, fin := int(data[200]), data[201]
	if idx >= rate || fin > 1 {
		return errors.New("nanosha3: invalid state encoding")
	}
	copy(s.state[:], data[:200])
	s.idx = idx
	s.finalized = fin == 1
	return nil
}

// A Hasher is an incremental SHA-3-256 hasher. The zero value is ready for
// use, and a Hasher owns no external resources: it may be stack-allocated,
// copied, and dropped freely.
type Hasher struct {
	s Sponge
}

// New returns a new Hasher.
func New() *Hasher {
	return new(Hasher)
}

// Write absorbs p into the hasher. It never fails.
func (h *Hasher) Write(p []byte) (n int, err error) {
	h.s.Absorb(p)
	return len(p), nil
}

// Sum256 returns the digest of everything written so far. It finalizes a
// copy of the sponge, so the hasher remains usable for further writes: the
// digest of a prefix may be taken without disturbing the running state.
func (h *Hasher) Sum256() [Size]byte {
	s := h.s
	return s.Finalize()
}

// Reset restores the hasher to its initial state.
func (h *Hasher) Reset() {
	h.s = Sponge{}
}

// AppendBinary appends the hasher's state to b.
func (h *Hasher) AppendBinary(b []byte) ([]byte, error) {
	return h.s.AppendBinary(b)
}

// MarshalBinary returns the hasher's state as a byte slice.
func (h *Hasher) MarshalBinary() (data []byte, err error) {
	return h.s.MarshalBinary()
}

// UnmarshalBinary restores a state previously produced by MarshalBinary.
func (h *Hasher) UnmarshalBinary(data []byte) error {
	return h.s.UnmarshalBinary(data)
}
