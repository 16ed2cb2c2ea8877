// This package contains the main [Codec] interface and several implementations inside subpackages.
//
// A codec is a wire format on the encode side of the protocol. Since buffers produced by
// shapebuf replay exactly the calls of the values they were captured from, a buffer encodes to
// the same bytes as the original value with every codec.
package codec

import "github.com/teenjuna/shapebuf/encode"

// Codec serializes values into a wire format.
//
// Implementations are not considered thread-safe. Use Derive to get an instance for another
// goroutine.
type Codec interface {
	// Encode serializes v into a byte slice owned by the caller.
	Encode(v encode.Encodable) ([]byte, error)
	// Derive returns a new Codec instance with the same settings.
	//
	// The returned codec maintains its own internal state independent of the original.
	Derive() Codec
}
