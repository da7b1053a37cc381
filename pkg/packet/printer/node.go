package printer

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/bitskit/pkg/packet"
)

// Node is the serialized shape of a packet, shared by the JSON, YAML and
// CBOR printers and by ParseTree.
type Node struct {
	Version    uint8   `json:"version"               yaml:"version"               cbor:"version"`
	Type       string  `json:"type"                  yaml:"type"                  cbor:"type"`
	Value      *uint64 `json:"value,omitempty"       yaml:"value,omitempty"       cbor:"value,omitempty"`
	LengthType string  `json:"length_type,omitempty" yaml:"length_type,omitempty" cbor:"length_type,omitempty"`
	Offset     *int    `json:"offset,omitempty"      yaml:"offset,omitempty"      cbor:"offset,omitempty"`
	Bits       *int    `json:"bits,omitempty"        yaml:"bits,omitempty"        cbor:"bits,omitempty"`
	Children   []*Node `json:"children,omitempty"    yaml:"children,omitempty"    cbor:"children,omitempty"`
}

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("printer: CBOR encoder initialization failed: " + err.Error())
	}
}

// NewNode converts pk into its serialized shape. Positions are included only
// when withPositions is set.
func NewNode(pk *packet.Packet, withPositions bool) *Node {
	if pk == nil {
		return nil
	}
	n := &Node{Version: pk.Version, Type: pk.Type.String()}
	if pk.Type.IsLiteral() {
		v := pk.Value
		n.Value = &v
	} else {
		n.LengthType = pk.LengthType.String()
	}
	if withPositions {
		off, bits := pk.Offset, pk.Bits
		n.Offset, n.Bits = &off, &bits
	}
	for _, c := range pk.Children {
		n.Children = append(n.Children, NewNode(c, withPositions))
	}
	return n
}

// Packet converts n back into a packet tree. Offsets are not restored.
func (n *Node) Packet() (*packet.Packet, error) {
	if n == nil {
		return nil, packet.ErrNilPacket
	}
	t, err := packet.ParseType(n.Type)
	if err != nil {
		return nil, err
	}
	pk := &packet.Packet{Version: n.Version, Type: t}
	if t.IsLiteral() {
		if n.Value == nil {
			return nil, fmt.Errorf("printer: literal node without value")
		}
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("printer: literal node with %d children", len(n.Children))
		}
		pk.Value = *n.Value
		return pk, nil
	}
	if n.Value != nil {
		return nil, fmt.Errorf("printer: %s node with a value", t)
	}
	if pk.LengthType, err = packet.ParseLengthType(n.LengthType); err != nil {
		return nil, err
	}
	pk.Children = make([]*packet.Packet, 0, len(n.Children))
	for i, c := range n.Children {
		child, err := c.Packet()
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		pk.Children = append(pk.Children, child)
	}
	return pk, nil
}

func (p *Printer) printJSON(pk *packet.Packet) error {
	data, err := json.MarshalIndent(NewNode(pk, p.opts.ShowPositions), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.writer, string(data))
	return err
}

func (p *Printer) printYAML(pk *packet.Packet) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(NewNode(pk, p.opts.ShowPositions)); err != nil {
		return err
	}
	return enc.Close()
}

func (p *Printer) printCBOR(pk *packet.Packet) error {
	data, err := cborEnc.Marshal(NewNode(pk, p.opts.ShowPositions))
	if err != nil {
		return err
	}
	_, err = p.writer.Write(data)
	return err
}
