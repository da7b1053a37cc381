package packet

import (
	"fmt"
	"strconv"
	"strings"
)

// Wire field widths, in bits.
const (
	VersionBits     = 3
	TypeBits        = 3
	LengthTypeBits  = 1
	TotalLengthBits = 15
	CountBits       = 11
	GroupFlagBits   = 1
	GroupDataBits   = 4
	GroupBits       = GroupFlagBits + GroupDataBits

	// HeaderBits is the size of the version + type prefix shared by all packets.
	HeaderBits = VersionBits + TypeBits

	MaxVersion     = 1<<VersionBits - 1
	MaxTotalLength = 1<<TotalLengthBits - 1
	MaxCount       = 1<<CountBits - 1
)

// Type is a packet type code. Codes 0-7 are the ones the wire format can
// carry; anything else is an Other code that only hand-built trees produce.
type Type uint8

const (
	TypeSum         Type = 0
	TypeProduct     Type = 1
	TypeMinimum     Type = 2
	TypeMaximum     Type = 3
	TypeLiteral     Type = 4
	TypeGreaterThan Type = 5
	TypeLessThan    Type = 6
	TypeEqualTo     Type = 7
)

var typeNames = [...]string{
	TypeSum:         "sum",
	TypeProduct:     "product",
	TypeMinimum:     "minimum",
	TypeMaximum:     "maximum",
	TypeLiteral:     "literal",
	TypeGreaterThan: "greater_than",
	TypeLessThan:    "less_than",
	TypeEqualTo:     "equal_to",
}

var typeSymbols = [...]string{
	TypeSum:         "+",
	TypeProduct:     "*",
	TypeMinimum:     "min",
	TypeMaximum:     "max",
	TypeLiteral:     "lit",
	TypeGreaterThan: ">",
	TypeLessThan:    "<",
	TypeEqualTo:     "=",
}

// Known reports whether t is one of the eight named types.
func (t Type) Known() bool { return int(t) < len(typeNames) }

// IsLiteral reports whether t is the literal type.
func (t Type) IsLiteral() bool { return t == TypeLiteral }

// String implements the Stringer interface for Type
func (t Type) String() string {
	if t.Known() {
		return typeNames[t]
	}
	return fmt.Sprintf("other(%d)", uint8(t))
}

// Symbol returns the short operator spelling used by Packet.String.
func (t Type) Symbol() string {
	if t.Known() {
		return typeSymbols[t]
	}
	return t.String()
}

// ParseType is the inverse of Type.String. It also accepts operator symbols
// and bare numeric codes.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range typeNames {
		if s == name || s == typeSymbols[i] {
			return Type(i), nil
		}
	}
	if inner, ok := strings.CutPrefix(s, "other("); ok {
		s = strings.TrimSuffix(inner, ")")
	}
	code, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("packet: unknown type %q", s)
	}
	return Type(code), nil
}

// LengthType selects how an operator bounds its sub-packets.
type LengthType uint8

const (
	// LengthTotalBits bounds sub-packets by their combined bit length.
	LengthTotalBits LengthType = 0
	// LengthCount bounds sub-packets by their number.
	LengthCount LengthType = 1
)

func (l LengthType) String() string {
	switch l {
	case LengthTotalBits:
		return "bits"
	case LengthCount:
		return "count"
	default:
		return fmt.Sprintf("length_type(%d)", uint8(l))
	}
}

// ParseLengthType is the inverse of LengthType.String.
func ParseLengthType(s string) (LengthType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bits", "total_bits":
		return LengthTotalBits, nil
	case "count":
		return LengthCount, nil
	default:
		return 0, fmt.Errorf("packet: unknown length type %q", s)
	}
}

// Packet is one decoded node. Literal packets carry Value and no children;
// operators carry ordered Children and no value.
//
// Offset and Bits locate the packet in the transmission it was decoded from
// and are zero for hand-built trees. LengthType records how an operator's
// sub-packets were bounded on the wire.
type Packet struct {
	Version    uint8
	Type       Type
	Value      uint64
	Children   []*Packet
	LengthType LengthType

	Offset int // bit offset of the header
	Bits   int // bits consumed, including sub-packets
}

// Literal builds a literal packet.
func Literal(version uint8, value uint64) *Packet {
	return &Packet{Version: version, Type: TypeLiteral, Value: value}
}

// Operator builds an operator packet over children.
func Operator(version uint8, t Type, children ...*Packet) *Packet {
	return &Packet{Version: version, Type: t, Children: children}
}
