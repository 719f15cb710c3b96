package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat allocates a new *big.Float set to x with prec bits of precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Log returns ln(x) with the precision of x.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Log2 returns log2(x) with the precision of x.
func Log2(x *big.Float) (log2 *big.Float) {
	ln2 := bigfloat.Log(NewFloat(2, x.Prec()))
	return new(big.Float).Quo(bigfloat.Log(x), ln2)
}
