// Package main exports the nano_sha3_256 symbol with C linkage, for linking
// nanosha3 into C callers as a static or shared library:
//
//	go build -buildmode=c-archive -o libnanosha3.a ./cabi
//
// The matching declaration ships in nano_sha3_256.h.
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/codahale/nanosha3"
)

// nano_sha3_256 writes the SHA-3-256 digest of input[0:len] to out[0:32].
//
// out must point to at least 32 writable bytes and input to at least len
// readable bytes; input may be any non-null pointer when len is zero. The
// function is total over those preconditions and cannot fail.
//
//export nano_sha3_256
func nano_sha3_256(out *C.uint8_t, input *C.uint8_t, length C.size_t) {
	var msg []byte
	if length > 0 {
		msg = unsafe.Slice((*byte)(unsafe.Pointer(input)), int(length))
	}

	digest := nanosha3.Sum256(msg)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(out)), len(digest)), digest[:])
}

func main() {}
