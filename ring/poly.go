package ring

import (
	"fmt"
	"slices"

	"github.com/google/go-cmp/cmp"
)

// Poly is a dense polynomial of Z_q[X]/(X^N+1) attached to a [Context].
// Coefficients are stored in natural order, reduced in [0, q).
type Poly struct {
	ctx    *Context
	coeffs []uint64
}

// NewPoly instantiates a new [Poly] from the given coefficients, which
// are copied and reduced mod q. Returns [ErrLengthMismatch] if the
// number of coefficients differs from the context degree.
func NewPoly(c *Context, coeffs []uint64) (*Poly, error) {

	if len(coeffs) != c.N {
		return nil, fmt.Errorf("%w: len(coeffs)=%d, N=%d", ErrLengthMismatch, len(coeffs), c.N)
	}

	p := c.NewPoly()
	BarrettReduceVec(coeffs, p.coeffs, c.Modulus, c.BRedConstant)

	return p, nil
}

// NewPoly instantiates a new zero [Poly] attached to the context.
func (c *Context) NewPoly() *Poly {
	return &Poly{ctx: c, coeffs: make([]uint64, c.N)}
}

// Context returns the [Context] the polynomial is attached to.
func (p *Poly) Context() *Context {
	return p.ctx
}

// Coefficients returns the backing coefficient slice, in natural order.
// Writes to the returned slice must keep the coefficients in [0, q).
func (p *Poly) Coefficients() []uint64 {
	return p.coeffs
}

// N returns the degree of the polynomial ring.
func (p *Poly) N() int {
	return p.ctx.N
}

// Clone returns a deep copy of the polynomial.
func (p *Poly) Clone() *Poly {
	return &Poly{ctx: p.ctx, coeffs: slices.Clone(p.coeffs)}
}

// Copy copies the coefficients of q on p. Returns
// [ErrIncompatibleContext] if the polynomials are attached to
// different rings.
func (p *Poly) Copy(q *Poly) error {

	if !p.ctx.Equal(q.ctx) {
		return fmt.Errorf("%w: (N=%d, q=%d) != (N=%d, q=%d)", ErrIncompatibleContext, p.ctx.N, p.ctx.Modulus, q.ctx.N, q.ctx.Modulus)
	}

	copy(p.coeffs, q.coeffs)

	return nil
}

// Equal returns true if both polynomials belong to the same ring and
// have identical coefficients.
func (p *Poly) Equal(q *Poly) bool {
	return p == q || (q != nil && p.ctx.Equal(q.ctx) && cmp.Equal(p.coeffs, q.coeffs))
}

// Add returns p + q mod modulus. Returns [ErrIncompatibleContext] if
// the polynomials are attached to different rings.
func (p *Poly) Add(q *Poly) (*Poly, error) {

	if !p.ctx.Equal(q.ctx) {
		return nil, fmt.Errorf("%w: (N=%d, q=%d) != (N=%d, q=%d)", ErrIncompatibleContext, p.ctx.N, p.ctx.Modulus, q.ctx.N, q.ctx.Modulus)
	}

	r := p.ctx.NewPoly()
	AddVec(p.coeffs, q.coeffs, r.coeffs, p.ctx.Modulus)

	return r, nil
}

// Sub returns p - q mod modulus. Returns [ErrIncompatibleContext] if
// the polynomials are attached to different rings.
func (p *Poly) Sub(q *Poly) (*Poly, error) {

	if !p.ctx.Equal(q.ctx) {
		return nil, fmt.Errorf("%w: (N=%d, q=%d) != (N=%d, q=%d)", ErrIncompatibleContext, p.ctx.N, p.ctx.Modulus, q.ctx.N, q.ctx.Modulus)
	}

	r := p.ctx.NewPoly()
	SubVec(p.coeffs, q.coeffs, r.coeffs, p.ctx.Modulus)

	return r, nil
}

// Neg returns -p mod modulus.
func (p *Poly) Neg() *Poly {
	r := p.ctx.NewPoly()
	NegVec(p.coeffs, r.coeffs, p.ctx.Modulus)
	return r
}

// Mul returns p * q mod (X^N+1, modulus) via the NTT.
// It is a shorthand for [Poly.NegacyclicConvolution].
func (p *Poly) Mul(q *Poly) (*Poly, error) {
	return p.NegacyclicConvolution(q)
}

// NegacyclicConvolution returns p * q mod (X^N+1, modulus), evaluated
// as NTT(p) o NTT(q) followed by a backward transform, with Barrett
// reduction throughout. Returns [ErrIncompatibleContext] if the
// polynomials are attached to different rings.
func (p *Poly) NegacyclicConvolution(q *Poly) (*Poly, error) {

	if !p.ctx.Equal(q.ctx) {
		return nil, fmt.Errorf("%w: (N=%d, q=%d) != (N=%d, q=%d)", ErrIncompatibleContext, p.ctx.N, p.ctx.Modulus, q.ctx.N, q.ctx.Modulus)
	}

	c := p.ctx

	pHat := slices.Clone(p.coeffs)
	qHat := slices.Clone(q.coeffs)

	if err := c.NTT(pHat); err != nil {
		return nil, err
	}

	if err := c.NTT(qHat); err != nil {
		return nil, err
	}

	r := c.NewPoly()
	MulBarrettReduceVec(pHat, qHat, r.coeffs, c.Modulus, c.BRedConstant)

	if err := c.INTT(r.coeffs); err != nil {
		return nil, err
	}

	return r, nil
}

// NegacyclicConvolutionShoup returns p * q mod (X^N+1, modulus) with
// Shoup multiplication throughout, amortizing the per-twiddle constants
// over the transform. The output is bit-identical to
// [Poly.NegacyclicConvolution].
func (p *Poly) NegacyclicConvolutionShoup(q *Poly) (*Poly, error) {

	if !p.ctx.Equal(q.ctx) {
		return nil, fmt.Errorf("%w: (N=%d, q=%d) != (N=%d, q=%d)", ErrIncompatibleContext, p.ctx.N, p.ctx.Modulus, q.ctx.N, q.ctx.Modulus)
	}

	c := p.ctx

	pHat := slices.Clone(p.coeffs)
	qHat := slices.Clone(q.coeffs)

	if err := c.NTTShoup(pHat); err != nil {
		return nil, err
	}

	if err := c.NTTShoup(qHat); err != nil {
		return nil, err
	}

	qHatShoup := make([]uint64, c.N)
	for i := range qHat {
		qHatShoup[i] = GetSRedConstant(qHat[i], c.Modulus)
	}

	r := c.NewPoly()
	MulShoupVec(pHat, qHat, qHatShoup, r.coeffs, c.Modulus)

	if err := c.INTTShoup(r.coeffs); err != nil {
		return nil, err
	}

	return r, nil
}

// NaiveNegacyclicConvolution returns p * q mod (X^N+1, modulus) by the
// O(N^2) schoolbook product, wrapping X^N to -1. It is the reference
// oracle for the NTT-based convolutions. Returns
// [ErrIncompatibleContext] if the polynomials are attached to
// different rings.
func (p *Poly) NaiveNegacyclicConvolution(q *Poly) (*Poly, error) {

	if !p.ctx.Equal(q.ctx) {
		return nil, fmt.Errorf("%w: (N=%d, q=%d) != (N=%d, q=%d)", ErrIncompatibleContext, p.ctx.N, p.ctx.Modulus, q.ctx.N, q.ctx.Modulus)
	}

	a := p.ctx.Arith()
	N := p.ctx.N

	r := p.ctx.NewPoly()
	for i := 0; i < N; i++ {

		if p.coeffs[i] == 0 {
			continue
		}

		for j := 0; j < N; j++ {

			v := a.Mul(p.coeffs[i], q.coeffs[j])

			if k := i + j; k < N {
				r.coeffs[k] = a.Add(r.coeffs[k], v)
			} else {
				r.coeffs[k-N] = a.Sub(r.coeffs[k-N], v)
			}
		}
	}

	return r, nil
}

// Stats returns the base 2 logarithm of the standard deviation and the
// mean of the coefficients of p.
func (p *Poly) Stats() [2]float64 {
	return p.ctx.Stats(p.coeffs)
}
