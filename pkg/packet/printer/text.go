package printer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/bitskit/pkg/packet"
)

type styles struct {
	op      lipgloss.Style
	literal lipgloss.Style
	value   lipgloss.Style
	meta    lipgloss.Style
	result  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{op: plain, literal: plain, value: plain, meta: plain, result: plain}
	}
	return styles{
		op:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		literal: r.NewStyle().Foreground(lipgloss.Color("10")),
		value:   r.NewStyle().Foreground(lipgloss.Color("11")),
		meta:    r.NewStyle().Faint(true),
		result:  r.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

// printText prints pk and its children as an indented tree.
func (p *Printer) printText(pk *packet.Packet, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	var line strings.Builder
	line.WriteString(indent)
	if pk.Type.IsLiteral() {
		line.WriteString(p.styles.literal.Render(pk.Type.String()))
	} else {
		line.WriteString(p.styles.op.Render(pk.Type.String()))
	}

	meta := fmt.Sprintf("v%d", pk.Version)
	if !pk.Type.IsLiteral() {
		meta += fmt.Sprintf(", %s, %d operand(s)", pk.LengthType, len(pk.Children))
	}
	if p.opts.ShowPositions {
		meta += fmt.Sprintf(", @%d+%d", pk.Offset, pk.Bits)
	}
	line.WriteString(" " + p.styles.meta.Render("("+meta+")"))

	if pk.Type.IsLiteral() {
		line.WriteString(" = " + p.styles.value.Render(fmt.Sprintf("%d", pk.Value)))
	} else if p.opts.ShowResults {
		line.WriteString(" => " + p.styles.result.Render(result(pk)))
	}

	if _, err := fmt.Fprintln(p.writer, line.String()); err != nil {
		return err
	}

	if len(pk.Children) == 0 {
		return nil
	}
	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		more := strings.Repeat(" ", (depth+1)*p.opts.IndentSize)
		_, err := fmt.Fprintf(p.writer, "%s%s\n", more,
			p.styles.meta.Render(fmt.Sprintf("... %d packet(s) below", pk.Count()-1)))
		return err
	}
	for _, c := range pk.Children {
		if c == nil {
			return packet.ErrNilPacket
		}
		if err := p.printText(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
