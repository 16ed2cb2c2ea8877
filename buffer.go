package shapebuf

import (
	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/encode"
	"github.com/teenjuna/shapebuf/value"
)

// Owned is a buffer that holds no references to memory outside of itself, apart from borrowed
// data of unbounded lifetime. It can be kept for as long as needed.
//
// The zero value is an empty buffer that fails every operation with [ErrConsumed].
type Owned struct {
	root value.Value
}

// Ref is a buffer that may borrow strings and byte strings from its source.
//
// A Ref is a handle: passing the same Ref to two constructors shares the subtree between them.
// Don't do that if either parent is going to be decoded with a consuming decoder.
type Ref struct {
	root    value.Value
	bounded bool
}

var (
	_ encode.Encodable = Owned{}
	_ encode.Encodable = Ref{}
)

// Value returns the root of the buffered tree, or nil if the buffer is empty. The tree must not be
// modified.
func (o Owned) Value() value.Value {
	return o.root
}

// Ref returns a view of the buffer as a [Ref]. The conversion is free.
func (o Owned) Ref() Ref {
	return Ref{root: o.root}
}

// Encode replays the buffer through e, making exactly the calls that encoding the original value
// made. It doesn't modify the buffer and is safe to call concurrently.
func (o Owned) Encode(e encode.Encoder) error {
	if o.root == nil {
		return ErrConsumed
	}
	return encodeValue(e, o.root)
}

// Decoder returns a decoder that hands owned data over to visitors without copying. The buffer
// is emptied by the call, so it can be decoded this way only once.
func (o *Owned) Decoder() decode.Decoder {
	root := o.root
	o.root = nil
	return newDecoder(root, false)
}

// BorrowDecoder returns a read-only decoder. Every string and byte string is presented as
// borrowed from the buffer, which must outlive the decoded value. It is safe to use concurrently
// with other read-only traversals.
func (o Owned) BorrowDecoder() decode.Decoder {
	return newDecoder(o.root, true)
}

// Decode fills target from the buffer through [Owned.Decoder].
func (o *Owned) Decode(target decode.Decodable) error {
	return target.Decode(o.Decoder())
}

// Value returns the root of the buffered tree, or nil if the buffer is empty. The tree must not be
// modified.
func (r Ref) Value() value.Value {
	return r.root
}

// Bounded reports whether the buffer borrows data whose lifetime is bounded by its source.
func (r Ref) Bounded() bool {
	return r.bounded
}

// Owned converts the buffer to an [Owned] one. It reports false if the buffer is bounded, in which
// case it would need a copy.
func (r Ref) Owned() (Owned, bool) {
	if r.bounded {
		return Owned{}, false
	}
	return Owned{root: r.root}, true
}

// Encode replays the buffer through e. It doesn't modify the buffer and is safe to call
// concurrently.
func (r Ref) Encode(e encode.Encoder) error {
	if r.root == nil {
		return ErrConsumed
	}
	return encodeValue(e, r.root)
}

// Decoder returns a decoder that presents borrowed data as borrowed and hands owned data over to
// visitors without copying. The buffer is emptied by the call.
func (r *Ref) Decoder() decode.Decoder {
	root := r.root
	r.root = nil
	return newDecoder(root, false)
}

// BorrowDecoder returns a read-only decoder presenting every string and byte string as borrowed.
func (r Ref) BorrowDecoder() decode.Decoder {
	return newDecoder(r.root, true)
}

// Decode fills target from the buffer through [Ref.Decoder].
func (r *Ref) Decode(target decode.Decodable) error {
	return target.Decode(r.Decoder())
}
