// Package shapebuf buffers values passing through the shape-based [encode] and [decode]
// protocols without committing to a wire format.
//
// [Capture] drives a value's Encode method and records every call as a [value.Value] tree held by
// an [Owned] buffer. Encoding the buffer later replays exactly the same calls, so the buffer can
// stand in for the original value in front of any encoder:
//
//	buf, err := shapebuf.Capture(v)
//	if err != nil {
//		return err
//	}
//	data, err := json.New().Encode(buf)
//
// A buffer is also a decoder. [Owned.Decoder] hands the buffered data over to a visitor, while
// [Owned.BorrowDecoder] leaves the buffer intact and can be used many times concurrently.
//
// Buffers can be built by hand with constructors like [RecordStruct] and [Seq]. Those return a
// [Ref], which may borrow strings and byte strings from the caller; see [Str] and [Bytes].
package shapebuf
