package packet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/bitskit/internal/bitbuf"
)

// LengthMode picks the length type Encode writes for operators.
type LengthMode int

const (
	// LengthAsDecoded writes each operator's own LengthType.
	LengthAsDecoded LengthMode = iota
	// LengthAllBits writes every operator in total-bits mode.
	LengthAllBits
	// LengthAllCount writes every operator in count mode.
	LengthAllCount
)

// EncodeOptions controls encoding.
type EncodeOptions struct {
	LengthMode LengthMode
}

// Encode serialises p to the wire format, zero-padded to a whole byte.
// Literals use the fewest groups that hold their value. Operators must have a
// zero Value; anything else is ErrEncodeRange.
func Encode(p *Packet) ([]byte, error) {
	return EncodeWithOptions(p, EncodeOptions{})
}

// EncodeHex is Encode followed by upper-case hex formatting.
func EncodeHex(p *Packet) (string, error) {
	data, err := Encode(p)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// EncodeWithOptions serialises p using opts.
func EncodeWithOptions(p *Packet, opts EncodeOptions) ([]byte, error) {
	w := bitbuf.NewWriter(p.Count() * 16)
	if err := encodePacket(w, p, opts); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodePacket(w *bitbuf.Writer, p *Packet, opts EncodeOptions) error {
	if p == nil {
		return ErrNilPacket
	}
	if p.Version > MaxVersion {
		return fmt.Errorf("%w: version %d", ErrEncodeRange, p.Version)
	}
	if !p.Type.Known() {
		return fmt.Errorf("%w: type %s", ErrEncodeRange, p.Type)
	}
	if err := w.Put(uint64(p.Version), VersionBits); err != nil {
		return err
	}
	if err := w.Put(uint64(p.Type), TypeBits); err != nil {
		return err
	}
	if p.Type.IsLiteral() {
		if len(p.Children) != 0 {
			return fmt.Errorf("%w: literal with %d children", ErrEncodeRange, len(p.Children))
		}
		return encodeLiteral(w, p.Value)
	}
	if p.Value != 0 {
		return fmt.Errorf("%w: %s operator with value %d", ErrEncodeRange, p.Type, p.Value)
	}

	lt := p.LengthType
	switch opts.LengthMode {
	case LengthAllBits:
		lt = LengthTotalBits
	case LengthAllCount:
		lt = LengthCount
	}

	// Children go to their own buffer first: total-bits mode needs their size.
	body := bitbuf.NewWriter(0)
	for _, c := range p.Children {
		if err := encodePacket(body, c, opts); err != nil {
			return err
		}
	}

	if err := w.Put(uint64(lt), LengthTypeBits); err != nil {
		return err
	}
	switch lt {
	case LengthCount:
		if len(p.Children) > MaxCount {
			return fmt.Errorf("%w: %d sub-packets", ErrEncodeRange, len(p.Children))
		}
		if err := w.Put(uint64(len(p.Children)), CountBits); err != nil {
			return err
		}
	case LengthTotalBits:
		if body.Len() > MaxTotalLength {
			return fmt.Errorf("%w: %d sub-packet bits", ErrEncodeRange, body.Len())
		}
		if err := w.Put(uint64(body.Len()), TotalLengthBits); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: length type %s", ErrEncodeRange, lt)
	}
	return w.Append(body)
}

func encodeLiteral(w *bitbuf.Writer, v uint64) error {
	groups := 1
	for rest := v >> GroupDataBits; rest != 0; rest >>= GroupDataBits {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		if err := w.PutBit(i > 0); err != nil {
			return err
		}
		if err := w.Put(v>>(i*GroupDataBits)&0xF, GroupDataBits); err != nil {
			return err
		}
	}
	return nil
}
