// Package factorization implements factorization of small integers,
// as required for the generation of number theoretic constants.
package factorization

import (
	"fmt"
	"math/big"
	"math/bits"
	"sort"
)

// Trial division handles all factors below this bound,
// Pollard's rho the remaining large cofactors.
const trialDivisionBound = 1 << 16

// GetFactors returns the distinct prime factors of m in increasing order.
// m must be positive and fit in 64 bits.
func GetFactors(m *big.Int) (factors []*big.Int) {

	if m.Sign() <= 0 || !m.IsUint64() {
		panic(fmt.Errorf("invalid input: m=%s must be a positive 64-bit integer", m.String()))
	}

	for _, factor := range Factors(m.Uint64()) {
		factors = append(factors, new(big.Int).SetUint64(factor))
	}

	return
}

// Factors returns the distinct prime factors of m in increasing order.
func Factors(m uint64) (factors []uint64) {

	if m < 2 {
		return
	}

	for p := uint64(2); p < trialDivisionBound && p*p <= m; p++ {
		if m%p == 0 {
			factors = append(factors, p)
			for m%p == 0 {
				m /= p
			}
		}
	}

	if m > 1 {
		factors = append(factors, splitLarge(m)...)
	}

	sort.Slice(factors, func(i, j int) bool { return factors[i] < factors[j] })

	return
}

// splitLarge factors a cofactor free of divisors below the
// trial division bound.
func splitLarge(m uint64) (factors []uint64) {

	if new(big.Int).SetUint64(m).ProbablyPrime(0) {
		return []uint64{m}
	}

	d := pollardRho(m)

	set := map[uint64]bool{}
	for _, factor := range Factors(d) {
		set[factor] = true
	}
	for _, factor := range Factors(m / d) {
		set[factor] = true
	}

	for factor := range set {
		factors = append(factors, factor)
	}

	return
}

// pollardRho returns a non-trivial divisor of the composite m
// using Floyd cycle finding.
func pollardRho(m uint64) uint64 {

	if m&1 == 0 {
		return 2
	}

	for c := uint64(1); ; c++ {

		f := func(x uint64) uint64 {
			return addMod(mulMod(x, x, m), c, m)
		}

		x, y, d := uint64(2), uint64(2), uint64(1)

		for d == 1 {
			x = f(x)
			y = f(f(y))
			d = gcd(diff(x, y), m)
		}

		if d != m {
			return d
		}
	}
}

func diff(x, y uint64) uint64 {
	if x > y {
		return x - y
	}
	return y - x
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func addMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}
