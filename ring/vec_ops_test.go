package ring

import (
	"testing"

	"github.com/Pro7ech/ntt/utils/sampling"
	"github.com/stretchr/testify/require"
)

// N is deliberately not a multiple of 8 to exercise the unrolled tail.
const vecTestN = 100

func testVecOperands(q uint64) (p1, p2, p3 []uint64) {
	source := sampling.NewSource([32]byte{'v', 'e', 'c'})
	u := NewUniformSampler(source, q)
	return u.ReadNew(vecTestN), u.ReadNew(vecTestN), make([]uint64, vecTestN)
}

func TestAddVec(t *testing.T) {

	q := uint64(0x1fffffffffe00001)
	p1, p2, p3 := testVecOperands(q)

	AddVec(p1, p2, p3, q)

	for i := range p3 {
		require.Equal(t, CRed(p1[i]+p2[i], q), p3[i])
		require.Less(t, p3[i], q)
	}

	require.Panics(t, func() { AddVec(p1, p2[:10], p3, q) })
}

func TestSubVec(t *testing.T) {

	q := uint64(0x1fffffffffe00001)
	p1, p2, p3 := testVecOperands(q)

	SubVec(p1, p2, p3, q)

	for i := range p3 {
		require.Equal(t, CRed(p1[i]+q-p2[i], q), p3[i])
	}
}

func TestNegVec(t *testing.T) {

	q := uint64(17)
	p1, _, p2 := testVecOperands(q)
	p1[0] = 0

	NegVec(p1, p2, q)

	require.Equal(t, uint64(0), p2[0])
	for i := range p2 {
		require.Equal(t, CRed(q-p1[i], q), p2[i])
	}
}

func TestBarrettReduceVec(t *testing.T) {

	q := uint64(7681)
	bredconstant := GetBRedConstant(q)

	source := sampling.NewSource([32]byte{'b', 'r', 'v'})
	p1 := make([]uint64, vecTestN)
	for i := range p1 {
		p1[i] = source.Uint64()
	}
	p2 := make([]uint64, vecTestN)

	BarrettReduceVec(p1, p2, q, bredconstant)

	for i := range p2 {
		require.Equal(t, p1[i]%q, p2[i])
	}
}

func TestMulVec(t *testing.T) {

	q := uint64(0x1fffffffffe00001)
	bredconstant := GetBRedConstant(q)
	p1, p2, p3 := testVecOperands(q)

	MulBarrettReduceVec(p1, p2, p3, q, bredconstant)

	for i := range p3 {
		require.Equal(t, BRed(p1[i], p2[i], q, bredconstant), p3[i])
	}

	p2shoup := make([]uint64, vecTestN)
	for i := range p2 {
		p2shoup[i] = GetSRedConstant(p2[i], q)
	}

	shoup := make([]uint64, vecTestN)
	MulShoupVec(p1, p2, p2shoup, shoup, q)
	require.Equal(t, p3, shoup)
}

func TestMulScalarVec(t *testing.T) {

	q := uint64(0x1fffffffffe00001)
	bredconstant := GetBRedConstant(q)
	p1, _, p2 := testVecOperands(q)

	scalar := uint64(12345)

	MulScalarBarrettVec(p1, scalar, p2, q, bredconstant)

	for i := range p2 {
		require.Equal(t, BRed(p1[i], scalar, q, bredconstant), p2[i])
	}

	shoup := make([]uint64, vecTestN)
	MulScalarShoupVec(p1, scalar, GetSRedConstant(scalar, q), shoup, q)
	require.Equal(t, p2, shoup)
}

func TestZeroVec(t *testing.T) {
	p1 := []uint64{1, 2, 3}
	ZeroVec(p1)
	require.Equal(t, []uint64{0, 0, 0}, p1)
}
