// Package digest provides a hash.Hash implementation of SHA-3-256 for use
// with code that expects the standard library's hashing interface.
package digest

import (
	"hash"

	"github.com/codahale/nanosha3"
	"github.com/codahale/nanosha3/internal/mem"
)

// Size is the size, in bytes, of the hash's digest.
const Size = nanosha3.Size

// New returns a new SHA-3-256 hash.Hash instance.
func New() hash.Hash {
	return new(digest)
}

type digest struct {
	h nanosha3.Hasher
}

func (d *digest) Write(p []byte) (n int, err error) {
	return d.h.Write(p)
}

func (d *digest) Sum(b []byte) []byte {
	// Finalizes a copy of the sponge, so Sum may be interleaved with Write.
	sum := d.h.Sum256()
	ret, out := mem.SliceForAppend(b, Size)
	copy(out, sum[:])
	return ret
}

func (d *digest) Reset() {
	d.h.Reset()
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return nanosha3.BlockSize
}

func (d *digest) MarshalBinary() (data []byte, err error) {
	return d.h.MarshalBinary()
}

func (d *digest) AppendBinary(b []byte) ([]byte, error) {
	return d.h.AppendBinary(b)
}

func (d *digest) UnmarshalBinary(data []byte) error {
	return d.h.UnmarshalBinary(data)
}

var _ hash.Hash = (*digest)(nil)
