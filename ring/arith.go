package ring

import (
	"fmt"
	"math/bits"
)

// Arith bundles a modulus with its precomputed Barrett constant and
// provides scalar arithmetic over Z_q. All operands are expected to be
// residues in [0, q); use [Arith.Reduce] to bring arbitrary values in
// range.
type Arith struct {
	Q            uint64
	BRedConstant [2]uint64
}

// NewArith instantiates a new [Arith] for the given modulus.
// The modulus must be in [2, 2^62).
func NewArith(q uint64) (a Arith, err error) {

	if q < 2 || bits.Len64(q) > MaxModulusBitLen {
		return Arith{}, fmt.Errorf("%w: q=%d must be in [2, 2^%d)", ErrInvalidModulus, q, MaxModulusBitLen)
	}

	return Arith{Q: q, BRedConstant: GetBRedConstant(q)}, nil
}

// Add returns a + b mod q.
func (m Arith) Add(a, b uint64) uint64 {
	return CRed(a+b, m.Q)
}

// Sub returns a - b mod q.
func (m Arith) Sub(a, b uint64) uint64 {
	return CRed(a+m.Q-b, m.Q)
}

// Neg returns -a mod q.
func (m Arith) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return m.Q - a
}

// Mul returns a * b mod q with Barrett reduction.
func (m Arith) Mul(a, b uint64) uint64 {
	return BRed(a, b, m.Q, m.BRedConstant)
}

// MulShoup returns a * w mod q given the precomputed Shoup constant of w.
func (m Arith) MulShoup(a, w, wshoup uint64) uint64 {
	return SRed(a, w, wshoup, m.Q)
}

// Pow returns a^e mod q.
func (m Arith) Pow(a, e uint64) (y uint64) {

	y = 1
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			y = BRed(y, a, m.Q, m.BRedConstant)
		}
		a = BRed(a, a, m.Q, m.BRedConstant)
	}

	return
}

// Inverse returns a^-1 mod q via Fermat's little theorem.
// The modulus must be prime for the result to be meaningful.
func (m Arith) Inverse(a uint64) (uint64, error) {

	if a == 0 {
		return 0, fmt.Errorf("%w: 0 has no inverse mod %d", ErrDivisionByZero, m.Q)
	}

	return m.Pow(a, m.Q-2), nil
}

// Reduce returns a mod q for an arbitrary 64-bit a.
func (m Arith) Reduce(a uint64) uint64 {
	return BRedAdd(a, m.Q, m.BRedConstant)
}
