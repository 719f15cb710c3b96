package ring

import (
	"fmt"
	"math/big"

	"github.com/Pro7ech/ntt/utils/factorization"
)

// maxGeneratorCandidate bounds the generator scan. The smallest
// generator of Z_q^* is far below this bound for every 64-bit prime in
// practice; hitting it means q was not prime.
const maxGeneratorCandidate = 1 << 20

// PrimitiveRoot returns the smallest generator of Z_q^* for a prime q.
// The distinct prime factors of q-1 can be provided to bypass the
// factorization; they are returned alongside the generator.
func PrimitiveRoot(q uint64, factors []uint64) (uint64, []uint64, error) {

	if factors != nil {
		if err := CheckFactors(q-1, factors); err != nil {
			return 0, factors, err
		}
	} else {
		for _, factor := range factorization.GetFactors(new(big.Int).SetUint64(q - 1)) {
			factors = append(factors, factor.Uint64())
		}
	}

	// g generates Z_q^* iff g^((q-1)/f) != 1 for every prime factor f of q-1.
	for g := uint64(2); g < maxGeneratorCandidate && g < q; g++ {

		generator := true
		for _, factor := range factors {
			if ModExp(g, (q-1)/factor, q) == 1 {
				generator = false
				break
			}
		}

		if generator {
			return g, factors, nil
		}
	}

	return 0, factors, fmt.Errorf("%w: no generator mod q=%d (is q prime?)", ErrRootNotFound, q)
}

// CheckFactors checks that the given list contains all the distinct
// prime factors of m.
func CheckFactors(m uint64, factors []uint64) error {

	for _, factor := range factors {

		if !IsPrime(factor) {
			return fmt.Errorf("composite factor %d", factor)
		}

		for m%factor == 0 {
			m /= factor
		}
	}

	if m != 1 {
		return fmt.Errorf("incomplete factor list")
	}

	return nil
}

// CheckPrimitiveRoot checks that g generates Z_q^*, given the distinct
// prime factors of q-1.
func CheckPrimitiveRoot(g, q uint64, factors []uint64) error {

	if err := CheckFactors(q-1, factors); err != nil {
		return err
	}

	for _, factor := range factors {
		if ModExp(g, (q-1)/factor, q) == 1 {
			return fmt.Errorf("invalid primitive root %d", g)
		}
	}

	return nil
}

// PrimitiveNthRoot returns an element of exact multiplicative order
// nthRoot mod q. nthRoot must be a power of two dividing q-1.
func PrimitiveNthRoot(q, nthRoot uint64) (psi uint64, err error) {

	if nthRoot == 0 || nthRoot&(nthRoot-1) != 0 || (q-1)%nthRoot != 0 {
		return 0, fmt.Errorf("%w: nthRoot=%d must be a power of two dividing q-1=%d", ErrRootNotFound, nthRoot, q-1)
	}

	g, _, err := PrimitiveRoot(q, nil)
	if err != nil {
		return 0, err
	}

	psi = ModExp(g, (q-1)/nthRoot, q)

	// A power-of-two order is exactly nthRoot iff psi^(nthRoot/2) = -1.
	if nthRoot > 1 && ModExp(psi, nthRoot>>1, q) != q-1 {
		return 0, fmt.Errorf("%w: candidate %d has order below %d mod %d", ErrRootNotFound, psi, nthRoot, q)
	}

	if ModExp(psi, nthRoot, q) != 1 {
		return 0, fmt.Errorf("%w: candidate %d is not an %d-th root of unity mod %d", ErrRootNotFound, psi, nthRoot, q)
	}

	return psi, nil
}
