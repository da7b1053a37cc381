package packet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/bitskit/internal/bitbuf"
)

// Options controls decoding.
type Options struct {
	// Limits bounds the decoded tree. The zero value disables every check;
	// Decode and DecodeHex use DefaultLimits.
	Limits Limits
}

// Decode decodes the outermost packet of a transmission. Bits after the
// packet are padding and are ignored.
func Decode(data []byte) (*Packet, error) {
	return DecodeWithOptions(data, Options{Limits: DefaultLimits()})
}

// DecodeHex decodes a hex transmission. Surrounding whitespace is ignored and
// digits are case-insensitive.
func DecodeHex(s string) (*Packet, error) {
	data, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// ParseHex converts transmission text to bytes, two digits per byte with the
// high nibble first.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(s))
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return data, nil
}

// DecodeWithOptions decodes the outermost packet of data using opts.
func DecodeWithOptions(data []byte, opts Options) (*Packet, error) {
	d := &decoder{r: bitbuf.NewReader(data), limits: opts.Limits}
	return d.packet(1)
}

type decoder struct {
	r      *bitbuf.Reader
	limits Limits
	count  int
}

// take reads one wire field, turning cursor exhaustion into ErrTruncated.
func (d *decoder) take(n int, field string) (uint64, error) {
	off := d.r.Offset()
	v, err := d.r.Take(n)
	if err != nil {
		if errors.Is(err, bitbuf.ErrOutOfBits) {
			err = fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		return 0, &DecodeError{Offset: off, Field: field, Err: err}
	}
	return v, nil
}

func (d *decoder) packet(depth int) (*Packet, error) {
	start := d.r.Offset()
	if exceeds(d.limits.MaxDepth, depth) {
		return nil, &LimitError{Limit: "MaxDepth", Current: depth, Maximum: d.limits.MaxDepth, Offset: start}
	}
	d.count++
	if exceeds(d.limits.MaxPackets, d.count) {
		return nil, &LimitError{Limit: "MaxPackets", Current: d.count, Maximum: d.limits.MaxPackets, Offset: start}
	}

	version, err := d.take(VersionBits, "version")
	if err != nil {
		return nil, err
	}
	code, err := d.take(TypeBits, "type")
	if err != nil {
		return nil, err
	}

	p := &Packet{Version: uint8(version), Type: Type(code), Offset: start}
	if p.Type.IsLiteral() {
		p.Value, err = d.literal()
	} else {
		err = d.operator(p, depth)
	}
	if err != nil {
		return nil, err
	}
	p.Bits = d.r.Offset() - start
	return p, nil
}

func (d *decoder) literal() (uint64, error) {
	var value uint64
	for {
		more, err := d.take(GroupFlagBits, "literal flag")
		if err != nil {
			return 0, err
		}
		off := d.r.Offset()
		group, err := d.take(GroupDataBits, "literal group")
		if err != nil {
			return 0, err
		}
		if value>>(64-GroupDataBits) != 0 {
			return 0, &DecodeError{Offset: off, Field: "literal group", Err: ErrLiteralOverflow}
		}
		value = value<<GroupDataBits | group
		if more == 0 {
			return value, nil
		}
	}
}

func (d *decoder) operator(p *Packet, depth int) error {
	lt, err := d.take(LengthTypeBits, "length type")
	if err != nil {
		return err
	}
	p.LengthType = LengthType(lt)

	if p.LengthType == LengthCount {
		n, err := d.take(CountBits, "sub-packet count")
		if err != nil {
			return err
		}
		count := int(n)
		if exceeds(d.limits.MaxChildren, count) {
			return &LimitError{Limit: "MaxChildren", Current: count, Maximum: d.limits.MaxChildren, Offset: p.Offset}
		}
		p.Children = make([]*Packet, 0, count)
		for range count {
			child, err := d.packet(depth + 1)
			if err != nil {
				return err
			}
			p.Children = append(p.Children, child)
		}
		return nil
	}

	n, err := d.take(TotalLengthBits, "sub-packet length")
	if err != nil {
		return err
	}
	length := int(n)
	start := d.r.Offset()
	if length > d.r.Remaining() {
		return &DecodeError{
			Offset: start,
			Field:  "sub-packet group",
			Err:    fmt.Errorf("%w: declared %d bits, %d remain", ErrTruncated, length, d.r.Remaining()),
		}
	}
	for d.r.Offset()-start < length {
		child, err := d.packet(depth + 1)
		if err != nil {
			return err
		}
		p.Children = append(p.Children, child)
		if exceeds(d.limits.MaxChildren, len(p.Children)) {
			return &LimitError{Limit: "MaxChildren", Current: len(p.Children), Maximum: d.limits.MaxChildren, Offset: p.Offset}
		}
	}
	if consumed := d.r.Offset() - start; consumed != length {
		return &DecodeError{
			Offset: start,
			Field:  "sub-packet group",
			Err:    fmt.Errorf("%w: declared %d bits, consumed %d", ErrLengthMismatch, length, consumed),
		}
	}
	return nil
}
