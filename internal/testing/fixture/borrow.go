package fixture

import (
	"github.com/teenjuna/shapebuf/decode"
	"github.com/teenjuna/shapebuf/encode"
)

// Path is the visitor method a string or byte string arrived through.
type Path string

const (
	PathTransient Path = "transient"
	PathBorrowed  Path = "borrowed"
	PathOwned     Path = "owned"
)

// Text is a string that remembers how it was decoded. Borrowed strings are kept without copying.
type Text struct {
	Value string
	Path  Path
}

func (t Text) Encode(e encode.Encoder) error {
	return e.EncodeStr(t.Value)
}

func (t *Text) Decode(d decode.Decoder) error {
	return d.DecodeStr(textVisitor{decode.Base{Expected: "a borrowed string"}, t})
}

type textVisitor struct {
	decode.Base
	out *Text
}

func (v textVisitor) VisitStr(s string) error {
	*v.out = Text{Value: string([]byte(s)), Path: PathTransient}
	return nil
}

func (v textVisitor) VisitBorrowedStr(s string) error {
	*v.out = Text{Value: s, Path: PathBorrowed}
	return nil
}

func (v textVisitor) VisitString(s string) error {
	*v.out = Text{Value: s, Path: PathOwned}
	return nil
}

// Blob is a byte string that remembers how it was decoded.
type Blob struct {
	Value []byte
	Path  Path
}

func (b Blob) Encode(e encode.Encoder) error {
	return e.EncodeBytes(b.Value)
}

func (b *Blob) Decode(d decode.Decoder) error {
	return d.DecodeBytes(blobVisitor{decode.Base{Expected: "a borrowed byte array"}, b})
}

type blobVisitor struct {
	decode.Base
	out *Blob
}

func (v blobVisitor) VisitBytes(b []byte) error {
	*v.out = Blob{Value: append([]byte(nil), b...), Path: PathTransient}
	return nil
}

func (v blobVisitor) VisitBorrowedBytes(b []byte) error {
	*v.out = Blob{Value: b, Path: PathBorrowed}
	return nil
}

func (v blobVisitor) VisitByteBuf(b []byte) error {
	*v.out = Blob{Value: b, Path: PathOwned}
	return nil
}
