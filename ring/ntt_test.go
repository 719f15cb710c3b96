package ring

import (
	"fmt"
	"slices"
	"testing"

	"github.com/Pro7ech/ntt/utils/sampling"
	"github.com/stretchr/testify/require"
)

func testContexts(t *testing.T) (contexts []*Context) {

	for _, N := range []int{1, 2, 4, 8, 256, 1024} {
		for _, bitlen := range []int{28, 61} {
			c, err := NewContextFromBitSize(N, bitlen)
			require.NoError(t, err)
			contexts = append(contexts, c)
		}
	}

	// Small moduli exercise the corner cases of the lazy reductions.
	c, err := NewContext(2, 5)
	require.NoError(t, err)
	contexts = append(contexts, c)

	c, err = NewContext(4, 17)
	require.NoError(t, err)

	return append(contexts, c)
}

func TestNTTRoundTrip(t *testing.T) {

	source := sampling.NewSource([32]byte{'n', 't', 't'})

	for _, c := range testContexts(t) {

		t.Run(fmt.Sprintf("N=%d/q=%d", c.N, c.Modulus), func(t *testing.T) {

			want := NewUniformSampler(source, c.Modulus).ReadNew(c.N)

			p := slices.Clone(want)
			require.NoError(t, c.NTT(p))
			require.NoError(t, c.INTT(p))
			require.Equal(t, want, p)

			p = slices.Clone(want)
			require.NoError(t, c.NTTShoup(p))
			require.NoError(t, c.INTTShoup(p))
			require.Equal(t, want, p)
		})
	}
}

// The Barrett and Shoup transforms must agree bit for bit.
func TestNTTShoupMatchesBarrett(t *testing.T) {

	source := sampling.NewSource([32]byte{'n', 't', 't', 's'})

	for _, c := range testContexts(t) {

		t.Run(fmt.Sprintf("N=%d/q=%d", c.N, c.Modulus), func(t *testing.T) {

			p := NewUniformSampler(source, c.Modulus).ReadNew(c.N)

			pBarrett := slices.Clone(p)
			pShoup := slices.Clone(p)

			require.NoError(t, c.NTT(pBarrett))
			require.NoError(t, c.NTTShoup(pShoup))
			require.Equal(t, pBarrett, pShoup)

			require.NoError(t, c.INTT(pBarrett))
			require.NoError(t, c.INTTShoup(pShoup))
			require.Equal(t, pBarrett, pShoup)
		})
	}
}

// The transform of the delta polynomial is the all-one vector, and the
// transform of a constant is that constant on every slot.
func TestNTTDelta(t *testing.T) {

	for _, c := range testContexts(t) {

		t.Run(fmt.Sprintf("N=%d/q=%d", c.N, c.Modulus), func(t *testing.T) {

			p := make([]uint64, c.N)
			p[0] = 1

			require.NoError(t, c.NTT(p))

			for i := range p {
				require.Equal(t, uint64(1), p[i])
			}

			require.NoError(t, c.INTT(p))
			require.Equal(t, uint64(1), p[0])
			for _, x := range p[1:] {
				require.Equal(t, uint64(0), x)
			}
		})
	}
}

func TestNTTLengthMismatch(t *testing.T) {

	c, err := NewContext(4, 17)
	require.NoError(t, err)

	p := make([]uint64, 8)

	require.ErrorIs(t, c.NTT(p), ErrLengthMismatch)
	require.ErrorIs(t, c.NTTShoup(p), ErrLengthMismatch)
	require.ErrorIs(t, c.INTT(p), ErrLengthMismatch)
	require.ErrorIs(t, c.INTTShoup(p), ErrLengthMismatch)
}

// NTT(a) o NTT(b) = NTT(a * b) where * is the negacyclic convolution,
// verified against the schoolbook product.
func TestNTTConvolutionTheorem(t *testing.T) {

	source := sampling.NewSource([32]byte{'c', 'o', 'n', 'v'})

	for _, c := range testContexts(t) {

		t.Run(fmt.Sprintf("N=%d/q=%d", c.N, c.Modulus), func(t *testing.T) {

			if c.N > 256 {
				t.Skip("schoolbook oracle too slow")
			}

			a := c.SampleUniform(source)
			b := c.SampleUniform(source)

			want, err := a.NaiveNegacyclicConvolution(b)
			require.NoError(t, err)

			have, err := a.NegacyclicConvolution(b)
			require.NoError(t, err)
			require.True(t, want.Equal(have))
		})
	}
}
