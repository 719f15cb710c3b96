package ring

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/Pro7ech/ntt/utils"
	"github.com/Pro7ech/ntt/utils/bignum"
)

// Context stores the precomputed constants for the negacyclic NTT of
// degree N over Z_q[X]/(X^N+1).
//
// A Context is logically immutable once returned by [NewContext]: it
// exposes no mutating method and must not be modified by its holders.
// It is therefore safe to share a single *Context across any number of
// polynomials and goroutines performing independent transforms.
//
// Transform convention: the forward transform is a Cooley-Tukey
// decimation-in-time network consuming coefficients in natural order
// and producing values in bit-reversed order; the backward transform
// is the matching Gentleman-Sande network restoring natural order and
// scaling by N^-1. The negacyclic twist by powers of Psi is folded
// into the root tables, so no separate twist pass is needed.
type Context struct {

	// Ring degree, a power of two.
	N int

	// Log2 of the ring degree.
	LogN int

	// Prime modulus, equal to 1 mod 2N.
	Modulus uint64

	// 2^bit_length(Modulus-1) - 1
	Mask uint64

	// Barrett reduction constant for Modulus.
	BRedConstant [2]uint64

	// Smallest generator of Z_q^*.
	PrimitiveRoot uint64

	// Primitive 2N-th root of unity and its inverse.
	Psi, PsiInv uint64

	// N^-1 mod Modulus and its Shoup constant.
	NInv, NInvShoup uint64

	// Powers of Psi (resp. PsiInv) in bit-reversed order.
	RootsForward, RootsBackward []uint64

	// Shoup constants of the root tables.
	RootsForwardShoup, RootsBackwardShoup []uint64
}

// NewContext instantiates a new [Context] for degree N and modulus q.
// N must be a power of two and q a prime equal to 1 mod 2N, below
// 2^MaxModulusBitLen.
func NewContext(N int, q uint64) (c *Context, err error) {

	if N < 1 || N&(N-1) != 0 {
		return nil, fmt.Errorf("%w: N=%d", ErrInvalidDegree, N)
	}

	if bits.Len64(q) > MaxModulusBitLen {
		return nil, fmt.Errorf("%w: q=%d exceeds %d bits", ErrInvalidModulus, q, MaxModulusBitLen)
	}

	if q%(uint64(N)<<1) != 1 {
		return nil, fmt.Errorf("%w: q=%d is not equal to 1 mod 2N=%d", ErrInvalidModulus, q, 2*N)
	}

	if !IsPrime(q) {
		return nil, fmt.Errorf("%w: q=%d is not prime", ErrInvalidModulus, q)
	}

	c = &Context{
		N:            N,
		LogN:         bits.Len64(uint64(N) - 1),
		Modulus:      q,
		Mask:         (1 << uint64(bits.Len64(q-1))) - 1,
		BRedConstant: GetBRedConstant(q),
	}

	if err = c.genNTTTable(); err != nil {
		return nil, err
	}

	return c, nil
}

// NewContextFromBitSize instantiates a new [Context] for degree N over
// the smallest prime of the given bit-length compatible with a
// negacyclic NTT of degree N.
func NewContextFromBitSize(N, bitlen int) (c *Context, err error) {

	q, err := FindFirstPrimeUp(bitlen, N)
	if err != nil {
		return nil, err
	}

	return NewContext(N, q)
}

// genNTTTable populates the root tables and the transform constants.
func (c *Context) genNTTTable() (err error) {

	N := uint64(c.N)
	q := c.Modulus
	nthRoot := N << 1

	var factors []uint64
	if c.PrimitiveRoot, factors, err = PrimitiveRoot(q, nil); err != nil {
		return err
	}

	if err = CheckPrimitiveRoot(c.PrimitiveRoot, q, factors); err != nil {
		return fmt.Errorf("%w: %s", ErrRootNotFound, err)
	}

	c.Psi = ModExp(c.PrimitiveRoot, (q-1)/nthRoot, q)

	// Psi must have exact order 2N: Psi^N = -1 and Psi^2N = 1.
	if c.N > 1 && ModExp(c.Psi, N, q) != q-1 {
		return fmt.Errorf("%w: psi^N != -1 mod q", ErrRootNotFound)
	}

	if ModExp(c.Psi, nthRoot, q) != 1 {
		return fmt.Errorf("%w: psi^2N != 1 mod q", ErrRootNotFound)
	}

	c.PsiInv = ModExp(c.Psi, q-2, q)

	c.NInv = ModExp(N%q, q-2, q)
	c.NInvShoup = GetSRedConstant(c.NInv, q)

	c.RootsForward = make([]uint64, c.N)
	c.RootsBackward = make([]uint64, c.N)

	// RootsForward[bitrev(j)] = Psi^j, filled iteratively so that each
	// power is a single modular multiplication away from the previous.
	c.RootsForward[0] = 1
	c.RootsBackward[0] = 1
	for j := uint64(1); j < N; j++ {
		prev := utils.BitReverse64(j-1, c.LogN)
		next := utils.BitReverse64(j, c.LogN)
		c.RootsForward[next] = BRed(c.RootsForward[prev], c.Psi, q, c.BRedConstant)
		c.RootsBackward[next] = BRed(c.RootsBackward[prev], c.PsiInv, q, c.BRedConstant)
	}

	c.RootsForwardShoup = make([]uint64, c.N)
	c.RootsBackwardShoup = make([]uint64, c.N)
	for i := range c.RootsForward {
		c.RootsForwardShoup[i] = GetSRedConstant(c.RootsForward[i], q)
		c.RootsBackwardShoup[i] = GetSRedConstant(c.RootsBackward[i], q)
	}

	return nil
}

// Arith returns the scalar arithmetic of the context's modulus.
func (c *Context) Arith() Arith {
	return Arith{Q: c.Modulus, BRedConstant: c.BRedConstant}
}

// Equal returns true if both contexts define the same ring, i.e. have
// equal degree and modulus.
func (c *Context) Equal(other *Context) bool {
	return c == other || (other != nil && c.N == other.N && c.Modulus == other.Modulus)
}

// Stats returns the base 2 logarithm of the standard deviation and the
// mean of the coefficients of p.
func (c *Context) Stats(p []uint64) [2]float64 {
	values := make([]big.Int, len(p))
	for i := range values {
		values[i].SetUint64(p[i])
	}
	return bignum.Stats(values, 128)
}
