package sampling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceDeterminism(t *testing.T) {

	seed := [32]byte{'t', 'e', 's', 't'}

	a := NewSource(seed)
	b := NewSource(seed)

	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}

	require.Equal(t, seed, a.GetSeed())
}

func TestSourceClone(t *testing.T) {

	a := NewSource(NewSeed())
	a.Uint64()

	b := a.Clone()

	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestSourceReset(t *testing.T) {

	a := NewSource(NewSeed())

	x := a.Uint64()
	y := a.Uint64()

	a.Reset()

	require.Equal(t, x, a.Uint64())
	require.Equal(t, y, a.Uint64())
}

func TestSourceRandCompat(t *testing.T) {

	// Source implements math/rand.Source64.
	r := rand.New(NewSource([32]byte{'r', 'n', 'g'}))

	for i := 0; i < 64; i++ {
		require.Less(t, r.Intn(100), 100)
	}
}

func TestSourceFloat64(t *testing.T) {

	s := NewSource([32]byte{'f', '6', '4'})

	for i := 0; i < 1024; i++ {
		f := s.Float64(-1, 1)
		require.GreaterOrEqual(t, f, -1.0)
		require.Less(t, f, 1.0)
	}
}

func TestSourceRead(t *testing.T) {

	seed := [32]byte{'r', 'e', 'a', 'd'}

	p := make([]byte, 1024)
	n, err := NewSource(seed).Read(p)
	require.NoError(t, err)
	require.Equal(t, len(p), n)

	q := make([]byte, 1024)
	_, err = NewSource(seed).Read(q)
	require.NoError(t, err)
	require.Equal(t, p, q)
}
