// Package packet decodes and evaluates BITS transmissions.
//
// A transmission is a hex string whose bits encode one outermost packet,
// followed by zero padding. Every packet starts with a 3-bit version and a
// 3-bit type code. Type 4 is a literal value stored in 5-bit groups (one
// continuation flag plus four data bits); every other type is an operator
// whose sub-packets are bounded either by a 15-bit total bit length or by an
// 11-bit sub-packet count.
//
// # Decoding
//
//	p, err := packet.DecodeHex("C200B40A82")
//	if err != nil {
//		return err
//	}
//	fmt.Println(p)              // (+ 1 2)
//	fmt.Println(p.VersionSum()) // 14
//
// Decode never panics on malformed input. Running out of bits yields
// ErrTruncated, a total-bits group that overshoots its declared length yields
// ErrLengthMismatch, and Limits bound nesting depth and tree size.
//
// # Evaluation
//
// Eval folds the tree into a single uint64. Sums and products wrap on
// overflow. Minimum and Maximum need at least one operand, comparisons need
// exactly two, and type codes without defined semantics fail with
// ErrUnsupportedOperator.
//
// # Encoding
//
// Encode is the inverse of Decode and is mostly useful for building fixtures
// and for re-encoding trees edited by hand.
package packet
