package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	require.True(t, IsPrime(2))
	require.True(t, IsPrime(17))
	require.True(t, IsPrime(1033))
	require.True(t, IsPrime(0x1fffffffffe00001))
	require.False(t, IsPrime(0))
	require.False(t, IsPrime(1))
	require.False(t, IsPrime(1025))
	require.False(t, IsPrime(1<<61))
}

func TestFindFirstPrimeUp(t *testing.T) {

	q, err := FindFirstPrimeUp(10, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(1033), q)

	q, err = FindFirstPrimeUp(4, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(17), q)

	q, err = FindFirstPrimeUp(28, 1024)
	require.NoError(t, err)
	require.Equal(t, uint64(268441601), q)

	// No prime equal to 1 mod 32 lies in [2^5, 2^6).
	_, err = FindFirstPrimeUp(5, 16)
	require.ErrorIs(t, err, ErrPrimeNotFound)
}

func TestFindFirstPrimeDown(t *testing.T) {

	q, err := FindFirstPrimeDown(10, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(1009), q)
}

func TestFindNextPrimeUp(t *testing.T) {

	q, err := FindNextPrimeUp(17, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(41), q)

	// q must already be equal to 1 mod 2N.
	_, err = FindNextPrimeUp(19, 4)
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestFindNextPrimeDown(t *testing.T) {

	q, err := FindNextPrimeDown(1033, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(1009), q)

	_, err = FindNextPrimeDown(9, 4)
	require.ErrorIs(t, err, ErrPrimeNotFound)

	_, err = FindNextPrimeDown(19, 4)
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestPrimeScanArgs(t *testing.T) {

	_, err := FindFirstPrimeUp(10, 3)
	require.ErrorIs(t, err, ErrInvalidDegree)

	_, err = FindFirstPrimeUp(1, 4)
	require.ErrorIs(t, err, ErrInvalidModulus)

	_, err = FindFirstPrimeUp(MaxModulusBitLen, 4)
	require.ErrorIs(t, err, ErrInvalidModulus)

	// 2N = 128 exceeds 2^5.
	_, err = FindFirstPrimeUp(5, 64)
	require.ErrorIs(t, err, ErrInvalidDegree)

	_, err = FindNextPrimeUp(17, 5)
	require.ErrorIs(t, err, ErrInvalidDegree)
}

func TestNTTFriendly(t *testing.T) {
	require.True(t, NTTFriendly(17, 4))
	require.True(t, NTTFriendly(1033, 4))
	require.False(t, NTTFriendly(19, 4))   // prime, wrong residue
	require.False(t, NTTFriendly(1025, 4)) // right residue, composite
}

func TestPrimitiveRoot(t *testing.T) {

	g, factors, err := PrimitiveRoot(17, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(3), g)
	require.ElementsMatch(t, []uint64{2}, factors)

	g, factors, err = PrimitiveRoot(1033, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(5), g)
	require.ElementsMatch(t, []uint64{2, 3, 43}, factors)

	g, _, err = PrimitiveRoot(7681, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(17), g)

	// Precomputed factors bypass the factorization.
	g, _, err = PrimitiveRoot(1033, []uint64{2, 3, 43})
	require.NoError(t, err)
	require.Equal(t, uint64(5), g)

	// Incomplete factor list.
	_, _, err = PrimitiveRoot(1033, []uint64{2, 3})
	require.Error(t, err)
}

func TestCheckPrimitiveRoot(t *testing.T) {
	require.NoError(t, CheckPrimitiveRoot(3, 17, []uint64{2}))
	require.Error(t, CheckPrimitiveRoot(2, 17, []uint64{2}))
	require.Error(t, CheckPrimitiveRoot(3, 17, []uint64{4}))
}

func TestPrimitiveNthRoot(t *testing.T) {

	psi, err := PrimitiveNthRoot(17, 8)
	require.NoError(t, err)
	require.Equal(t, uint64(9), psi)
	require.Equal(t, uint64(16), ModExp(psi, 4, 17))
	require.Equal(t, uint64(1), ModExp(psi, 8, 17))

	_, err = PrimitiveNthRoot(17, 3)
	require.ErrorIs(t, err, ErrRootNotFound)

	_, err = PrimitiveNthRoot(17, 32)
	require.ErrorIs(t, err, ErrRootNotFound)
}
