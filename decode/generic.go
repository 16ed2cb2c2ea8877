package decode

// Target constrains a pointer to T that can be decoded into.
type Target[T any] interface {
	*T
	Decodable
}

// Option is an optional target. Valid reports whether a value was present.
type Option[T any, PT Target[T]] struct {
	Value T
	Valid bool
}

func (o *Option[T, PT]) Decode(d Decoder) error {
	return d.DecodeOption(optionVisitor[T, PT]{Base{"option"}, o})
}

type optionVisitor[T any, PT Target[T]] struct {
	Base
	out *Option[T, PT]
}

func (v optionVisitor[T, PT]) VisitNone() error {
	*v.out = Option[T, PT]{}
	return nil
}

func (v optionVisitor[T, PT]) VisitUnit() error {
	return v.VisitNone()
}

func (v optionVisitor[T, PT]) VisitSome(d Decoder) error {
	var value T
	if err := PT(&value).Decode(d); err != nil {
		return err
	}
	*v.out = Option[T, PT]{Value: value, Valid: true}
	return nil
}

// Seq is a sequence target.
type Seq[T any, PT Target[T]] []T

func (s *Seq[T, PT]) Decode(d Decoder) error {
	return d.DecodeSeq(seqVisitor[T, PT]{Base{"a sequence"}, s})
}

type seqVisitor[T any, PT Target[T]] struct {
	Base
	out *Seq[T, PT]
}

func (v seqVisitor[T, PT]) VisitSeq(s SeqAccess) error {
	var elems Seq[T, PT]
	if n, ok := s.SizeHint(); ok {
		elems = make(Seq[T, PT], 0, min(n, 32))
	}
	for {
		var elem T
		ok, err := s.NextElement(PT(&elem))
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		elems = append(elems, elem)
	}
	*v.out = elems
	return nil
}
