package packet

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionSum_Vectors(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"8A004A801A8002F478", 16},
		{"620080001611562C8802118E34", 12},
		{"C0015000016115A2E0802F182340", 23},
		{"A0016C880162017C3686B18A3D4780", 31},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := DecodeHex(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, p.VersionSum())
		})
	}
}

func TestEval_Vectors(t *testing.T) {
	tests := []struct {
		input string
		expr  string
		want  uint64
	}{
		{"C200B40A82", "(+ 1 2)", 3},
		{"04005AC33890", "(* 6 9)", 54},
		{"880086C3E88112", "(min 7 8 9)", 7},
		{"CE00C43D881120", "(max 7 8 9)", 9},
		{"D8005AC2A8F0", "(< 5 15)", 1},
		{"F600BC2D8F", "(> 5 15)", 0},
		{"9C005AC2F8F0", "(= 5 15)", 0},
		{"9C0141080250320F1802104A08", "(= (+ 1 3) (* 2 2))", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := DecodeHex(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expr, p.String())

			got, err := p.Eval()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEval_Operators(t *testing.T) {
	lit := func(v uint64) *Packet { return Literal(0, v) }

	tests := []struct {
		name string
		p    *Packet
		want uint64
	}{
		{"literal", lit(42), 42},
		{"sum", Operator(0, TypeSum, lit(1), lit(2), lit(3)), 6},
		{"sum single", Operator(0, TypeSum, lit(9)), 9},
		{"sum empty", Operator(0, TypeSum), 0},
		{"sum wraps", Operator(0, TypeSum, lit(math.MaxUint64), lit(2)), 1},
		{"product", Operator(0, TypeProduct, lit(2), lit(3), lit(7)), 42},
		{"product empty", Operator(0, TypeProduct), 1},
		{"minimum", Operator(0, TypeMinimum, lit(9), lit(3), lit(5)), 3},
		{"maximum", Operator(0, TypeMaximum, lit(9), lit(3), lit(5)), 9},
		{"greater true", Operator(0, TypeGreaterThan, lit(5), lit(3)), 1},
		{"greater false", Operator(0, TypeGreaterThan, lit(3), lit(3)), 0},
		{"less true", Operator(0, TypeLessThan, lit(3), lit(5)), 1},
		{"less operand order", Operator(0, TypeLessThan, lit(5), lit(3)), 0},
		{"equal", Operator(0, TypeEqualTo, lit(4), lit(4)), 1},
		{"nested", Operator(0, TypeProduct,
			Operator(0, TypeSum, lit(1), lit(2)),
			Operator(0, TypeMaximum, lit(4), lit(10))), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.Eval()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	lit := func(v uint64) *Packet { return Literal(0, v) }

	tests := []struct {
		name    string
		p       *Packet
		wantErr error
		errType Type
	}{
		{"empty minimum", Operator(1, TypeMinimum), ErrEmptyOperator, TypeMinimum},
		{"empty maximum", Operator(1, TypeMaximum), ErrEmptyOperator, TypeMaximum},
		{"greater with one", Operator(1, TypeGreaterThan, lit(1)), ErrArityMismatch, TypeGreaterThan},
		{"less with three", Operator(1, TypeLessThan, lit(1), lit(2), lit(3)), ErrArityMismatch, TypeLessThan},
		{"equal with none", Operator(1, TypeEqualTo), ErrArityMismatch, TypeEqualTo},
		{"other code", Operator(1, Type(9), lit(1)), ErrUnsupportedOperator, Type(9)},
		{"nested failure", Operator(1, TypeSum, lit(1), Operator(2, TypeMaximum)), ErrEmptyOperator, TypeMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.p.Eval()
			require.ErrorIs(t, err, tt.wantErr)

			var ee *EvalError
			require.ErrorAs(t, err, &ee)
			require.Equal(t, tt.errType, ee.Type)
		})
	}
}

func TestEval_NilChild(t *testing.T) {
	p := Operator(0, TypeSum, Literal(0, 1), nil)
	_, err := p.Eval()
	require.ErrorIs(t, err, ErrNilPacket)
	require.Equal(t, "(+ 1 nil)", p.String())
}

func TestVersionSum_OtherAndNil(t *testing.T) {
	p := Operator(3, Type(12), Literal(4, 0), nil, Operator(7, TypeSum))
	require.Equal(t, uint64(14), p.VersionSum())

	var none *Packet
	require.Zero(t, none.VersionSum())
}

func TestVersionSum_OrderInvariant(t *testing.T) {
	p, err := DecodeHex("A0016C880162017C3686B18A3D4780")
	require.NoError(t, err)
	want := p.VersionSum()

	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		p.Walk(func(n *Packet, _ int) bool {
			rng.Shuffle(len(n.Children), func(i, j int) {
				n.Children[i], n.Children[j] = n.Children[j], n.Children[i]
			})
			return true
		})
		require.Equal(t, want, p.VersionSum())
	}
}
