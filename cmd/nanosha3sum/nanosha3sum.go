// Command nanosha3sum prints the SHA-3-256 digest of each input file, or of
// standard input when no files are given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/nanosha3/digest"
)

func main() {
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	status := 0
	for _, name := range names {
		sum, err := sumFile(name)
		if err != nil {
			slog.Error("failed to hash input", "name", name, "err", err)
			status = 1
			continue
		}
		fmt.Printf("%x  %s\n", sum, name)
	}
	os.Exit(status)
}

func sumFile(name string) ([]byte, error) {
	r := io.Reader(os.Stdin)
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	h := digest.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
