package flat

import "zkc/internal/field"

// ExprFromBits recombines big-endian bit expressions into their weighted
// sum: bit 0 carries weight 2^(n-1).
func ExprFromBits(curve field.Curve, bits []Expr) Expr {
	n := len(bits)
	weights := make([]Expr, n)
	for i, b := range bits {
		weight := curve.FromUint64(2).Exp(uint64(n - i - 1))
		weights[i] = Mul(NewNumber(weight), b)
	}
	return ExprFromSummands(curve, weights)
}

// ExprFromSummands folds a list of expressions into a left-leaning sum.
// An empty list yields the zero literal.
func ExprFromSummands(curve field.Curve, summands []Expr) Expr {
	if len(summands) == 0 {
		return NewNumber(curve.Zero())
	}
	acc := summands[0]
	for _, s := range summands[1:] {
		acc = Add(acc, s)
	}
	return acc
}
