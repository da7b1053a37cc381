package printer

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/joshuapare/bitskit/pkg/packet"
)

// printDot writes the tree as a Graphviz digraph. Nodes are numbered in
// pre-order so p0 is always the root.
func (p *Printer) printDot(pk *packet.Packet) error {
	w := bufio.NewWriter(p.writer)
	fmt.Fprintln(w, "digraph bits {")
	fmt.Fprintln(w, "  node [shape=record, fontname=\"monospace\"];")

	var edges []string
	next := 0
	var visit func(n *packet.Packet) int
	visit = func(n *packet.Packet) int {
		id := next
		next++
		fmt.Fprintf(w, "  p%d [label=\"%s\"];\n", id, dotLabel(n, p.opts))
		for _, c := range n.Children {
			if c == nil {
				continue
			}
			edges = append(edges, fmt.Sprintf("  p%d -> p%d;", id, visit(c)))
		}
		return id
	}
	visit(pk)
	for _, e := range edges {
		fmt.Fprintln(w, e)
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func dotLabel(n *packet.Packet, opts Options) string {
	fields := []string{
		fmt.Sprintf("{ver|%d}", n.Version),
		fmt.Sprintf("{op|%s}", dotEscape(n.Type.Symbol())),
	}
	switch {
	case n.Type.IsLiteral():
		fields = append(fields, fmt.Sprintf("{val|%d}", n.Value))
	case opts.ShowResults:
		fields = append(fields, fmt.Sprintf("{val|%s}", dotEscape(result(n))))
	}
	if opts.ShowPositions {
		fields = append(fields, fmt.Sprintf("{bit|%d+%d}", n.Offset, n.Bits))
	}
	return strings.Join(fields, "|")
}

var dotReplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func dotEscape(s string) string { return dotReplacer.Replace(s) }
