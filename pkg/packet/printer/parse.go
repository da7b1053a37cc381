package printer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/bitskit/pkg/packet"
)

// ErrUnsupportedTreeFormat is returned by ParseTree for formats that cannot
// be read back.
var ErrUnsupportedTreeFormat = errors.New("printer: format cannot be parsed")

var cborDec cbor.DecMode

func init() {
	var err error
	cborDec, err = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic("printer: CBOR decoder initialization failed: " + err.Error())
	}
}

// DetectFormat guesses which serialized tree format data is in. A CBOR map
// header selects FormatCBOR, a leading '{' selects FormatJSON and anything
// else is treated as YAML.
func DetectFormat(data []byte) Format {
	if len(data) > 0 && data[0]>>5 == 5 {
		return FormatCBOR
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// ParseTree reads a tree written by the JSON, YAML or CBOR printers. An
// empty format means DetectFormat.
func ParseTree(data []byte, format Format) (*packet.Packet, error) {
	if format == "" {
		format = DetectFormat(data)
	}

	var n Node
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("parse json tree: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("parse yaml tree: %w", err)
		}
	case FormatCBOR:
		if err := cborDec.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("parse cbor tree: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTreeFormat, format)
	}
	return n.Packet()
}
