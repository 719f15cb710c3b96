package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MaxModulusBitLen is the largest supported modulus bit-length.
// Keeping the modulus below 2^62 ensures that 4q fits in a uint64 and
// that products of residues fit in the 128-bit accumulator of the
// reduction algorithms.
const MaxModulusBitLen = 62

// CRed reduces a in [0, 2q) to [0, q) with a single conditional subtraction.
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// GetBRedConstant returns the constant for the Barrett reduction algorithm,
// floor(2^128/q) split into its high and low 64-bit words.
func GetBRedConstant(q uint64) [2]uint64 {
	mu := new(big.Int).Lsh(big.NewInt(1), 128)
	mu.Quo(mu, new(big.Int).SetUint64(q))
	return [2]uint64{new(big.Int).Rsh(mu, 64).Uint64(), mu.Uint64()}
}

// BRedLazy computes x*y mod q with Barrett reduction.
// The result is in the range [0, 2q).
func BRedLazy(x, y, q uint64, bredconstant [2]uint64) uint64 {

	ahi, alo := bits.Mul64(x, y)

	// t = floor((ahi*2^64 + alo) * floor(2^128/q) / 2^128),
	// assembled column by column with exact carry tracking.
	lhi, llo := bits.Mul64(alo, bredconstant[0])
	xhi, xlo := bits.Mul64(ahi, bredconstant[1])
	hhi, _ := bits.Mul64(alo, bredconstant[1])

	mid, c0 := bits.Add64(llo, xlo, 0)
	_, c1 := bits.Add64(mid, hhi, 0)

	t := ahi*bredconstant[0] + lhi + xhi + c0 + c1

	// t is floor(x*y/q) or floor(x*y/q)-1, hence the lazy range.
	return alo - t*q
}

// BRed computes x*y mod q with Barrett reduction.
// The result is in the range [0, q).
func BRed(x, y, q uint64, bredconstant [2]uint64) uint64 {
	return CRed(BRedLazy(x, y, q, bredconstant), q)
}

// BRedAddLazy reduces a 64-bit integer mod q.
// The result is in the range [0, 2q).
func BRedAddLazy(x, q uint64, bredconstant [2]uint64) uint64 {
	s, _ := bits.Mul64(x, bredconstant[0])
	return x - s*q
}

// BRedAdd reduces a 64-bit integer mod q.
// The result is in the range [0, q).
func BRedAdd(x, q uint64, bredconstant [2]uint64) uint64 {
	return CRed(BRedAddLazy(x, q, bredconstant), q)
}

// GetSRedConstant returns the constant for the Shoup multiplication by w,
// floor(w * 2^64 / q). Requires w < q.
func GetSRedConstant(w, q uint64) uint64 {
	if w >= q {
		panic(fmt.Errorf("cannot GetSRedConstant: w=%d >= q=%d", w, q))
	}
	s, _ := bits.Div64(w, 0, q)
	return s
}

// SRedLazy computes x*w mod q given the precomputed Shoup constant
// wshoup = floor(w * 2^64 / q). The result is in the range [0, 2q).
func SRedLazy(x, w, wshoup, q uint64) uint64 {
	s, _ := bits.Mul64(x, wshoup)
	return x*w - s*q
}

// SRed computes x*w mod q given the precomputed Shoup constant
// wshoup = floor(w * 2^64 / q). The result is in the range [0, q).
func SRed(x, w, wshoup, q uint64) uint64 {
	return CRed(SRedLazy(x, w, wshoup, q), q)
}

// ModExp returns x^e mod q for x < q.
func ModExp(x, e, q uint64) (y uint64) {

	bredconstant := GetBRedConstant(q)

	y = 1
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			y = BRed(y, x, q, bredconstant)
		}
		x = BRed(x, x, q, bredconstant)
	}

	return
}

// ModExpPow2 returns x^e mod q where q is a power of two.
func ModExpPow2(x, e, q uint64) (y uint64) {

	y = 1
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			y *= x
		}
		x *= x
	}

	return y & (q - 1)
}
