// Package testutil holds transmission vectors and helpers shared by tests.
package testutil

// Vector is a published transmission with its known results.
type Vector struct {
	Hex        string
	Expr       string // S-expression of the decoded tree
	VersionSum uint64
	Value      uint64
}

// ChecksumVectors exercise nesting and both length types.
var ChecksumVectors = []Vector{
	{Hex: "8A004A801A8002F478", Expr: "(min (min (min 15)))", VersionSum: 16, Value: 15},
	{Hex: "620080001611562C8802118E34", Expr: "(+ (+ 10 11) (+ 12 13))", VersionSum: 12, Value: 46},
	{Hex: "C0015000016115A2E0802F182340", Expr: "(+ (+ 10 11) (+ 12 13))", VersionSum: 23, Value: 46},
	{Hex: "A0016C880162017C3686B18A3D4780", Expr: "(+ (+ (+ 6 6 12 15 15)))", VersionSum: 31, Value: 54},
}

// EvalVectors cover every operator.
var EvalVectors = []Vector{
	{Hex: "C200B40A82", Expr: "(+ 1 2)", VersionSum: 14, Value: 3},
	{Hex: "04005AC33890", Expr: "(* 6 9)", VersionSum: 8, Value: 54},
	{Hex: "880086C3E88112", Expr: "(min 7 8 9)", VersionSum: 15, Value: 7},
	{Hex: "CE00C43D881120", Expr: "(max 7 8 9)", VersionSum: 11, Value: 9},
	{Hex: "D8005AC2A8F0", Expr: "(< 5 15)", VersionSum: 13, Value: 1},
	{Hex: "F600BC2D8F", Expr: "(> 5 15)", VersionSum: 19, Value: 0},
	{Hex: "9C005AC2F8F0", Expr: "(= 5 15)", VersionSum: 16, Value: 0},
	{Hex: "9C0141080250320F1802104A08", Expr: "(= (+ 1 3) (* 2 2))", VersionSum: 20, Value: 1},
}

// StructureVectors are the small trees used to describe the wire format.
var StructureVectors = []Vector{
	{Hex: "D2FE28", Expr: "2021", VersionSum: 6, Value: 2021},
	{Hex: "38006F45291200", Expr: "(< 10 20)", VersionSum: 9, Value: 1},
	{Hex: "EE00D40C823060", Expr: "(max 1 2 3)", VersionSum: 14, Value: 3},
}

// All returns every vector.
func All() []Vector {
	out := make([]Vector, 0, len(StructureVectors)+len(ChecksumVectors)+len(EvalVectors))
	out = append(out, StructureVectors...)
	out = append(out, ChecksumVectors...)
	return append(out, EvalVectors...)
}
