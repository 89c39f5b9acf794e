package nanosha3_test

import (
	"crypto/sha3"
	"testing"

	"github.com/codahale/nanosha3"
	fuzz "github.com/trailofbits/go-fuzz-utils"
	xsha3 "golang.org/x/crypto/sha3"
)

// FuzzChunkedWrites partitions a random message into random chunks and checks
// that the incremental digest matches both the one-shot path and an
// independent SHA-3-256 implementation.
func FuzzChunkedWrites(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("nanosha3 chunked writes"))

	for range 10 {
		seed := make([]byte, 1024)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		var h nanosha3.Hasher
		for rest := message; len(rest) > 0; {
			n, err := tp.GetUint16()
			if err != nil {
				n = 1
			}
			size := min(int(n%512)+1, len(rest))
			_, _ = h.Write(rest[:size])
			rest = rest[size:]
		}

		got := h.Sum256()
		if want := nanosha3.Sum256(message); got != want {
			t.Errorf("chunked Sum256() = %x, want %x", got, want)
		}
		if want := xsha3.Sum256(message); got != want {
			t.Errorf("Sum256() = %x, x/crypto/sha3 = %x", got, want)
		}
	})
}

// FuzzOneShot checks the one-shot path against an independent implementation.
func FuzzOneShot(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("abc"))
	f.Add(make([]byte, 136))

	f.Fuzz(func(t *testing.T, message []byte) {
		if got, want := nanosha3.Sum256(message), xsha3.Sum256(message); got != want {
			t.Errorf("Sum256() = %x, x/crypto/sha3 = %x", got, want)
		}
	})
}
