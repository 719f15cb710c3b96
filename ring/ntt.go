package ring

import (
	"fmt"
)

// butterfly computes (x + w*y, x - w*y) mod q with Barrett reduction.
func butterfly(x, y, w, q uint64, bredconstant [2]uint64) (uint64, uint64) {
	v := BRed(y, w, q, bredconstant)
	return CRed(x+v, q), CRed(x+q-v, q)
}

// invbutterfly computes (x + y, (x - y)*w) mod q with Barrett reduction.
func invbutterfly(x, y, w, q uint64, bredconstant [2]uint64) (uint64, uint64) {
	return CRed(x+y, q), BRed(CRed(x+q-y, q), w, q, bredconstant)
}

// butterflyShoup computes (x + w*y, x - w*y) mod q with Shoup
// multiplication by the fixed twiddle w.
func butterflyShoup(x, y, w, wshoup, q uint64) (uint64, uint64) {
	v := SRed(y, w, wshoup, q)
	return CRed(x+v, q), CRed(x+q-v, q)
}

// invbutterflyShoup computes (x + y, (x - y)*w) mod q with Shoup
// multiplication by the fixed twiddle w.
func invbutterflyShoup(x, y, w, wshoup, q uint64) (uint64, uint64) {
	return CRed(x+y, q), SRed(CRed(x+q-y, q), w, wshoup, q)
}

// NTT evaluates the forward negacyclic NTT of p in place, using Barrett
// reduction for the twiddle multiplications. p is consumed in natural
// order and produced in bit-reversed order.
func (c *Context) NTT(p []uint64) error {

	if len(p) != c.N {
		return fmt.Errorf("%w: len(p)=%d, N=%d", ErrLengthMismatch, len(p), c.N)
	}

	nttCore(p, c.N, c.Modulus, c.BRedConstant, c.RootsForward)

	return nil
}

// NTTShoup evaluates the forward negacyclic NTT of p in place, using
// Shoup multiplication for the twiddle multiplications. The output is
// bit-identical to [Context.NTT].
func (c *Context) NTTShoup(p []uint64) error {

	if len(p) != c.N {
		return fmt.Errorf("%w: len(p)=%d, N=%d", ErrLengthMismatch, len(p), c.N)
	}

	nttCoreShoup(p, c.N, c.Modulus, c.RootsForward, c.RootsForwardShoup)

	return nil
}

// INTT evaluates the backward negacyclic NTT of p in place, undoing
// [Context.NTT] (including the scaling by N^-1).
func (c *Context) INTT(p []uint64) error {

	if len(p) != c.N {
		return fmt.Errorf("%w: len(p)=%d, N=%d", ErrLengthMismatch, len(p), c.N)
	}

	inttCore(p, c.N, c.Modulus, c.BRedConstant, c.RootsBackward)
	MulScalarBarrettVec(p, c.NInv, p, c.Modulus, c.BRedConstant)

	return nil
}

// INTTShoup evaluates the backward negacyclic NTT of p in place, with
// Shoup multiplication. The output is bit-identical to [Context.INTT].
func (c *Context) INTTShoup(p []uint64) error {

	if len(p) != c.N {
		return fmt.Errorf("%w: len(p)=%d, N=%d", ErrLengthMismatch, len(p), c.N)
	}

	inttCoreShoup(p, c.N, c.Modulus, c.RootsBackward, c.RootsBackwardShoup)
	MulScalarShoupVec(p, c.NInv, c.NInvShoup, p, c.Modulus)

	return nil
}

// nttCore computes the Cooley-Tukey butterfly network over p.
// The stage m twiddles are read at roots[m+i], which holds Psi^j in
// bit-reversed order, merging the negacyclic twist into the transform.
func nttCore(p []uint64, N int, q uint64, bredconstant [2]uint64, roots []uint64) {

	// Sanity check
	if len(p) < N || len(roots) < N {
		panic(fmt.Sprintf("cannot nttCore: ensure that len(p)=%d and len(roots)=%d >= N=%d", len(p), len(roots), N))
	}

	t := N >> 1
	for m := 1; m < N; m <<= 1 {

		for i := 0; i < m; i++ {

			j1 := (i * t) << 1
			j2 := j1 + t
			w := roots[m+i]

			for jx, jy := j1, j1+t; jx < j2; jx, jy = jx+1, jy+1 {
				p[jx], p[jy] = butterfly(p[jx], p[jy], w, q, bredconstant)
			}
		}

		t >>= 1
	}
}

func nttCoreShoup(p []uint64, N int, q uint64, roots, rootsshoup []uint64) {

	// Sanity check
	if len(p) < N || len(roots) < N || len(rootsshoup) < N {
		panic(fmt.Sprintf("cannot nttCoreShoup: ensure that len(p)=%d, len(roots)=%d and len(rootsshoup)=%d >= N=%d", len(p), len(roots), len(rootsshoup), N))
	}

	t := N >> 1
	for m := 1; m < N; m <<= 1 {

		for i := 0; i < m; i++ {

			j1 := (i * t) << 1
			j2 := j1 + t
			w := roots[m+i]
			wshoup := rootsshoup[m+i]

			for jx, jy := j1, j1+t; jx < j2; jx, jy = jx+1, jy+1 {
				p[jx], p[jy] = butterflyShoup(p[jx], p[jy], w, wshoup, q)
			}
		}

		t >>= 1
	}
}

// inttCore computes the Gentleman-Sande butterfly network over p.
// The caller is responsible for the final scaling by N^-1.
func inttCore(p []uint64, N int, q uint64, bredconstant [2]uint64, roots []uint64) {

	// Sanity check
	if len(p) < N || len(roots) < N {
		panic(fmt.Sprintf("cannot inttCore: ensure that len(p)=%d and len(roots)=%d >= N=%d", len(p), len(roots), N))
	}

	t := 1
	for h := N >> 1; h > 0; h >>= 1 {

		for i, j1 := 0, 0; i < h; i, j1 = i+1, j1+2*t {

			j2 := j1 + t
			w := roots[h+i]

			for jx, jy := j1, j1+t; jx < j2; jx, jy = jx+1, jy+1 {
				p[jx], p[jy] = invbutterfly(p[jx], p[jy], w, q, bredconstant)
			}
		}

		t <<= 1
	}
}

func inttCoreShoup(p []uint64, N int, q uint64, roots, rootsshoup []uint64) {

	// Sanity check
	if len(p) < N || len(roots) < N || len(rootsshoup) < N {
		panic(fmt.Sprintf("cannot inttCoreShoup: ensure that len(p)=%d, len(roots)=%d and len(rootsshoup)=%d >= N=%d", len(p), len(roots), len(rootsshoup), N))
	}

	t := 1
	for h := N >> 1; h > 0; h >>= 1 {

		for i, j1 := 0, 0; i < h; i, j1 = i+1, j1+2*t {

			j2 := j1 + t
			w := roots[h+i]
			wshoup := rootsshoup[h+i]

			for jx, jy := j1, j1+t; jx < j2; jx, jy = jx+1, jy+1 {
				p[jx], p[jy] = invbutterflyShoup(p[jx], p[jy], w, wshoup, q)
			}
		}

		t <<= 1
	}
}
