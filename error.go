package shapebuf

import "github.com/teenjuna/shapebuf/decode"

var (
	// ErrMissingMapKey is returned when a map value is encoded without a preceding key.
	ErrMissingMapKey = &Error{msg: "missing map key"}

	// ErrMissingMapValue is returned when a map key isn't followed by its value, either while
	// capturing or while decoding.
	ErrMissingMapValue = &Error{msg: "missing map value"}

	// ErrConsumed is returned by a buffer or decoder whose contents were already handed over.
	ErrConsumed = &Error{msg: "buffer is consumed"}

	errNotEncoded   = &Error{msg: "value was not encoded"}
	errEncodedTwice = &Error{msg: "value was encoded more than once"}
	errBuilderEnded = &Error{msg: "builder is already ended"}
)

// Error is an error raised while buffering or replaying a value.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func invalidType(unexp decode.Unexpected, exp string) error {
	err := decode.InvalidType(unexp, exp)
	return &Error{msg: err.Error(), err: err}
}
