package packet

import (
	"strconv"
	"strings"
)

// Walk visits p and its descendants in pre-order. depth is 1 for p. When fn
// returns false the children of that packet are skipped.
func (p *Packet) Walk(fn func(p *Packet, depth int) bool) {
	p.walk(fn, 1)
}

func (p *Packet) walk(fn func(*Packet, int) bool, depth int) {
	if p == nil || !fn(p, depth) {
		return
	}
	for _, c := range p.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of packets in the tree rooted at p.
func (p *Packet) Count() int {
	n := 0
	p.Walk(func(*Packet, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the nesting depth of the tree; a lone literal has depth 1.
func (p *Packet) Depth() int {
	deepest := 0
	p.Walk(func(_ *Packet, depth int) bool {
		deepest = max(deepest, depth)
		return true
	})
	return deepest
}

// String renders the tree as an S-expression, e.g. "(< 10 20)".
func (p *Packet) String() string {
	var b strings.Builder
	p.writeExpr(&b)
	return b.String()
}

func (p *Packet) writeExpr(b *strings.Builder) {
	if p == nil {
		b.WriteString("nil")
		return
	}
	if p.Type.IsLiteral() {
		b.WriteString(strconv.FormatUint(p.Value, 10))
		return
	}
	b.WriteByte('(')
	b.WriteString(p.Type.Symbol())
	for _, c := range p.Children {
		b.WriteByte(' ')
		c.writeExpr(b)
	}
	b.WriteByte(')')
}
