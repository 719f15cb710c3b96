package ring

import (
	"math/bits"

	"github.com/Pro7ech/ntt/utils/sampling"
)

// UniformSampler wraps a [sampling.Source] and represents the state of
// a sampler of polynomials with coefficients uniform over [0, q).
type UniformSampler struct {
	Modulus uint64
	*sampling.Source
}

// NewUniformSampler creates a new instance of UniformSampler from a
// [sampling.Source] and a modulus.
func NewUniformSampler(source *sampling.Source, modulus uint64) (u *UniformSampler) {
	u = new(UniformSampler)
	u.Modulus = modulus
	u.Source = source
	return
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (u UniformSampler) GetSource() *sampling.Source {
	return u.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
// It can be used concurrently with the original sampler.
func (u UniformSampler) WithSource(source *sampling.Source) *UniformSampler {
	return &UniformSampler{
		Modulus: u.Modulus,
		Source:  source,
	}
}

// Read overwrites coeffs with uniform values in [0, q), by masked
// rejection sampling on the source.
func (u *UniformSampler) Read(coeffs []uint64) {

	var c uint64

	r := u.Source
	q := u.Modulus

	mask := uint64(1)<<uint64(bits.Len64(q-1)) - 1

	for i := range coeffs {

		c = r.Uint64() & mask

		for c >= q {
			c = r.Uint64() & mask
		}

		coeffs[i] = c
	}
}

// ReadNew samples a new slice of N uniform values in [0, q).
func (u *UniformSampler) ReadNew(N int) (coeffs []uint64) {
	coeffs = make([]uint64, N)
	u.Read(coeffs)
	return
}

// SampleUniform returns a new [Poly] with coefficients uniform over
// [0, q), drawn from the given source.
func (c *Context) SampleUniform(source *sampling.Source) *Poly {
	p := c.NewPoly()
	NewUniformSampler(source, c.Modulus).Read(p.coeffs)
	return p
}
