package packet

import "slices"

// VersionSum returns the sum of the version fields of p and all of its
// descendants. It is defined for every type, including unsupported ones.
func (p *Packet) VersionSum() uint64 {
	if p == nil {
		return 0
	}
	sum := uint64(p.Version)
	for _, c := range p.Children {
		sum += c.VersionSum()
	}
	return sum
}

// Eval computes the value of the expression rooted at p.
func (p *Packet) Eval() (uint64, error) {
	if p == nil {
		return 0, ErrNilPacket
	}
	if p.Type.IsLiteral() {
		return p.Value, nil
	}
	if !p.Type.Known() {
		return 0, p.evalErr(ErrUnsupportedOperator)
	}

	operands := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		v, err := c.Eval()
		if err != nil {
			return 0, err
		}
		operands[i] = v
	}

	switch p.Type {
	case TypeSum:
		var sum uint64
		for _, v := range operands {
			sum += v
		}
		return sum, nil
	case TypeProduct:
		product := uint64(1)
		for _, v := range operands {
			product *= v
		}
		return product, nil
	case TypeMinimum, TypeMaximum:
		if len(operands) == 0 {
			return 0, p.evalErr(ErrEmptyOperator)
		}
		if p.Type == TypeMinimum {
			return slices.Min(operands), nil
		}
		return slices.Max(operands), nil
	default:
		if len(operands) != 2 {
			return 0, p.evalErr(ErrArityMismatch)
		}
		return compare(p.Type, operands[0], operands[1]), nil
	}
}

func compare(t Type, a, b uint64) uint64 {
	var ok bool
	switch t {
	case TypeGreaterThan:
		ok = a > b
	case TypeLessThan:
		ok = a < b
	case TypeEqualTo:
		ok = a == b
	}
	if ok {
		return 1
	}
	return 0
}

func (p *Packet) evalErr(err error) error {
	return &EvalError{Type: p.Type, Children: len(p.Children), Offset: p.Offset, Err: err}
}
