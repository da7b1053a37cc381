// Package printer renders packet trees as text, JSON, YAML, CBOR or Graphviz
// DOT, and reads the JSON, YAML and CBOR forms back.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/joshuapare/bitskit/pkg/packet"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented human-readable tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML format.
	FormatYAML Format = "yaml"

	// FormatCBOR outputs CBOR using core deterministic encoding.
	FormatCBOR Format = "cbor"

	// FormatDot outputs a Graphviz digraph.
	FormatDot Format = "dot"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR, FormatDot}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format.
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep the text tree is printed (0 = unlimited).
	// Deeper operators are summarised on one line.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowPositions includes each packet's bit offset and width.
	// Default: false
	ShowPositions bool

	// ShowResults annotates operators with their evaluated value, or the
	// evaluation error (text and dot formats only).
	// Default: false
	ShowResults bool

	// Color styles text output with ANSI colors.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Printer handles formatted output of packet trees.
type Printer struct {
	opts   Options
	writer io.Writer
	styles styles
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(tree)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		// Callers decide about color; the renderer would otherwise probe w.
		r.SetColorProfile(termenv.ANSI)
	}
	return &Printer{
		opts:   opts,
		writer: w,
		styles: newStyles(r, opts.Color),
	}
}

// Print writes the tree rooted at pk.
func (p *Printer) Print(pk *packet.Packet) error {
	if pk == nil {
		return packet.ErrNilPacket
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(pk)
	case FormatYAML:
		return p.printYAML(pk)
	case FormatCBOR:
		return p.printCBOR(pk)
	case FormatDot:
		return p.printDot(pk)
	case FormatText, "":
		return p.printText(pk, 0)
	default:
		return fmt.Errorf("unknown format %q", p.opts.Format)
	}
}

// result renders the evaluated value of pk for annotations.
func result(pk *packet.Packet) string {
	v, err := pk.Eval()
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("%d", v)
}
