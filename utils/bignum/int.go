// Package bignum implements arbitrary precision arithmetic helpers.
package bignum

import (
	"math"
	"math/big"
)

// NewInt allocates a new *big.Int set to x.
func NewInt(x uint64) (y *big.Int) {
	return new(big.Int).SetUint64(x)
}

// Stats returns the base 2 logarithm of the standard deviation
// and the mean of values, computed with prec bits of precision.
func Stats(values []big.Int, prec uint) [2]float64 {

	N := len(values)

	mean := NewFloat(0, prec)
	tmp := NewFloat(0, prec)

	for i := range values {
		mean.Add(mean, tmp.SetInt(&values[i]))
	}

	mean.Quo(mean, NewFloat(float64(N), prec))

	std := NewFloat(0, prec)

	for i := range values {
		tmp.SetInt(&values[i])
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		std.Add(std, tmp)
	}

	if N > 1 {
		std.Quo(std, NewFloat(float64(N-1), prec))
	}

	std.Sqrt(std)

	logStd := math.Inf(-1)
	if std.Sign() > 0 {
		logStd, _ = Log2(std).Float64()
	}

	meanF64, _ := mean.Float64()

	return [2]float64{logStd, meanF64}
}
