package packet

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates the transmission ended inside a field or a sub-packet group.
	ErrTruncated = errors.New("packet: truncated transmission")
	// ErrLengthMismatch indicates a total-bits sub-packet group did not end on its declared length.
	ErrLengthMismatch = errors.New("packet: sub-packet length mismatch")
	// ErrLiteralOverflow indicates a literal needs more than 64 bits.
	ErrLiteralOverflow = errors.New("packet: literal does not fit in 64 bits")
	// ErrLimitExceeded indicates a decoded tree went past one of the configured Limits.
	ErrLimitExceeded = errors.New("packet: limit exceeded")
	// ErrInvalidHex indicates the transmission text is not an even-length hex string.
	ErrInvalidHex = errors.New("packet: invalid hex transmission")

	// ErrEmptyOperator indicates a minimum or maximum packet without operands.
	ErrEmptyOperator = errors.New("packet: operator has no operands")
	// ErrArityMismatch indicates a comparison packet without exactly two operands.
	ErrArityMismatch = errors.New("packet: comparison needs exactly two operands")
	// ErrUnsupportedOperator indicates a type code without evaluation semantics.
	ErrUnsupportedOperator = errors.New("packet: unsupported operator")
	// ErrNilPacket indicates a nil node inside a hand-built tree.
	ErrNilPacket = errors.New("packet: nil packet")

	// ErrEncodeRange indicates a field value that cannot be represented on the wire.
	ErrEncodeRange = errors.New("packet: value out of encodable range")
)

// DecodeError locates a decode failure in the bit stream.
type DecodeError struct {
	Offset int    // bit offset where the failing field starts
	Field  string // wire field being read
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("packet: decode %s at bit %d: %v", e.Field, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EvalError reports the packet that could not be evaluated.
type EvalError struct {
	Type     Type
	Children int
	Offset   int
	Err      error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("packet: eval %s with %d operand(s) at bit %d: %v",
		e.Type, e.Children, e.Offset, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
