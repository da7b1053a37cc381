package packet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func nest(depth int) *Packet {
	p := Literal(0, 1)
	for range depth - 1 {
		p = Operator(0, TypeSum, p)
		p.LengthType = LengthCount
	}
	return p
}

func TestLimits_Depth(t *testing.T) {
	data, err := Encode(nest(10))
	require.NoError(t, err)

	p, err := DecodeWithOptions(data, Options{Limits: Limits{MaxDepth: 10}})
	require.NoError(t, err)
	require.Equal(t, 10, p.Depth())

	_, err = DecodeWithOptions(data, Options{Limits: Limits{MaxDepth: 9}})
	require.ErrorIs(t, err, ErrLimitExceeded)

	var le *LimitError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "MaxDepth", le.Limit)
	require.Equal(t, 10, le.Current)
	require.Equal(t, 9, le.Maximum)
}

func TestLimits_Children(t *testing.T) {
	for _, lt := range []LengthType{LengthTotalBits, LengthCount} {
		p := Operator(0, TypeSum, Literal(0, 1), Literal(0, 2), Literal(0, 3))
		p.LengthType = lt
		data, err := Encode(p)
		require.NoError(t, err)

		_, err = DecodeWithOptions(data, Options{Limits: Limits{MaxChildren: 3}})
		require.NoError(t, err)

		_, err = DecodeWithOptions(data, Options{Limits: Limits{MaxChildren: 2}})
		var le *LimitError
		require.ErrorAs(t, err, &le, lt.String())
		require.Equal(t, "MaxChildren", le.Limit)
	}
}

func TestLimits_Packets(t *testing.T) {
	data, err := Encode(Operator(0, TypeSum, Literal(0, 1), Literal(0, 2)))
	require.NoError(t, err)

	_, err = DecodeWithOptions(data, Options{Limits: Limits{MaxPackets: 2}})
	require.ErrorIs(t, err, ErrLimitExceeded)
	require.Contains(t, err.Error(), "MaxPackets is 3 (max 2)")
}

func TestLimits_Presets(t *testing.T) {
	def := DefaultLimits()
	strict := StrictLimits()
	require.Greater(t, def.MaxDepth, strict.MaxDepth)
	require.Greater(t, def.MaxChildren, strict.MaxChildren)
	require.Greater(t, def.MaxPackets, strict.MaxPackets)

	data, err := Encode(nest(strictMaxDepth + 1))
	require.NoError(t, err)
	_, err = DecodeWithOptions(data, Options{Limits: strict})
	require.ErrorIs(t, err, ErrLimitExceeded)
	_, err = Decode(data)
	require.NoError(t, err)
}
