package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies a deterministic (for 64-bit inputs) Baillie-PSW
// primality test on q.
func IsPrime(q uint64) bool {
	return new(big.Int).SetUint64(q).ProbablyPrime(0)
}

// checkPrimeScanArgs validates the (bitlen, N) arguments shared by the
// prime scans. The scan steps by 2N starting from 2^bitlen + 1, so 2N
// must divide 2^bitlen for every candidate to be equal to 1 mod 2N.
func checkPrimeScanArgs(bitlen, N int) error {

	if N < 1 || N&(N-1) != 0 {
		return fmt.Errorf("%w: N=%d", ErrInvalidDegree, N)
	}

	if bitlen < 2 || bitlen > MaxModulusBitLen-1 {
		return fmt.Errorf("%w: bitlen=%d must be in [2, %d]", ErrInvalidModulus, bitlen, MaxModulusBitLen-1)
	}

	if uint64(N)<<1 > 1<<bitlen {
		return fmt.Errorf("%w: 2N=%d does not divide 2^%d", ErrInvalidDegree, 2*N, bitlen)
	}

	return nil
}

// FindFirstPrimeUp returns the smallest prime q >= 2^bitlen with
// q = 1 mod 2N. The scan is bounded by 2^(bitlen+1) and returns
// [ErrPrimeNotFound] if no prime lies in [2^bitlen, 2^(bitlen+1)).
func FindFirstPrimeUp(bitlen, N int) (uint64, error) {

	if err := checkPrimeScanArgs(bitlen, N); err != nil {
		return 0, err
	}

	step := uint64(N) << 1

	for q := uint64(1)<<bitlen + 1; q < 1<<(bitlen+1); q += step {
		if IsPrime(q) {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: no prime equal to 1 mod %d in [2^%d, 2^%d)", ErrPrimeNotFound, step, bitlen, bitlen+1)
}

// FindFirstPrimeDown returns the largest prime q <= 2^bitlen with
// q = 1 mod 2N. The scan is bounded by 2^(bitlen-1) and returns
// [ErrPrimeNotFound] if no prime lies in (2^(bitlen-1), 2^bitlen].
func FindFirstPrimeDown(bitlen, N int) (uint64, error) {

	if err := checkPrimeScanArgs(bitlen, N); err != nil {
		return 0, err
	}

	step := uint64(N) << 1

	for q := uint64(1)<<bitlen + 1 - step; q > 1<<(bitlen-1); q -= step {
		if IsPrime(q) {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: no prime equal to 1 mod %d in (2^%d, 2^%d]", ErrPrimeNotFound, step, bitlen-1, bitlen)
}

// FindNextPrimeUp returns the smallest prime p > q with p = 1 mod 2N,
// given q = 1 mod 2N. The scan is bounded by 2^MaxModulusBitLen.
func FindNextPrimeUp(q uint64, N int) (uint64, error) {

	if N < 1 || N&(N-1) != 0 {
		return 0, fmt.Errorf("%w: N=%d", ErrInvalidDegree, N)
	}

	step := uint64(N) << 1

	if q%step != 1 {
		return 0, fmt.Errorf("%w: q=%d is not equal to 1 mod %d", ErrInvalidModulus, q, step)
	}

	for p := q + step; p < 1<<MaxModulusBitLen; p += step {
		if IsPrime(p) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: no prime equal to 1 mod %d in (%d, 2^%d)", ErrPrimeNotFound, step, q, MaxModulusBitLen)
}

// FindNextPrimeDown returns the largest prime p < q with p = 1 mod 2N,
// given q = 1 mod 2N.
func FindNextPrimeDown(q uint64, N int) (uint64, error) {

	if N < 1 || N&(N-1) != 0 {
		return 0, fmt.Errorf("%w: N=%d", ErrInvalidDegree, N)
	}

	step := uint64(N) << 1

	if q <= step || q%step != 1 {
		return 0, fmt.Errorf("%w: q=%d is not equal to 1 mod %d", ErrInvalidModulus, q, step)
	}

	for p := q - step; p > step; p -= step {
		if IsPrime(p) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: no prime equal to 1 mod %d below %d", ErrPrimeNotFound, step, q)
}

// NTTFriendly returns true if q is a prime enabling a negacyclic NTT of
// degree N, i.e. q = 1 mod 2N.
func NTTFriendly(q uint64, N int) bool {
	return bits.Len64(q) <= MaxModulusBitLen && q%(uint64(N)<<1) == 1 && IsPrime(q)
}
