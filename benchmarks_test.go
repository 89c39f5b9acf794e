package nanosha3_test

import (
	"testing"

	"github.com/codahale/nanosha3"
)

var lengths = []struct { //nolint:gochecknoglobals // test data
	name string
	n    int
}{
	{"32B", 32},
	{"1KiB", 1024},
	{"16KiB", 16 * 1024},
	{"1MiB", 1024 * 1024},
}

func BenchmarkSum256(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				nanosha3.Sum256(input)
			}
		})
	}
}

func BenchmarkHasher(b *testing.B) {
	for _, length := range lengths {
		b.Run(length.name, func(b *testing.B) {
			input := make([]byte, length.n)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				var h nanosha3.Hasher
				_, _ = h.Write(input)
				h.Sum256()
			}
		})
	}
}
