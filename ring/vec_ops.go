package ring

import (
	"fmt"
	"unsafe"
)

// AddVec evaluates p3 = p1 + p2 mod modulus.
// p1, p2, p3 must be of the same size.
func AddVec(p1, p2, p3 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed(x[0]+y[0], modulus)
		z[1] = CRed(x[1]+y[1], modulus)
		z[2] = CRed(x[2]+y[2], modulus)
		z[3] = CRed(x[3]+y[3], modulus)
		z[4] = CRed(x[4]+y[4], modulus)
		z[5] = CRed(x[5]+y[5], modulus)
		z[6] = CRed(x[6]+y[6], modulus)
		z[7] = CRed(x[7]+y[7], modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = CRed(p1[i]+p2[i], modulus)
	}
}

// SubVec evaluates p3 = p1 - p2 mod modulus.
// p1, p2, p3 must be of the same size.
func SubVec(p1, p2, p3 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed(x[0]+modulus-y[0], modulus)
		z[1] = CRed(x[1]+modulus-y[1], modulus)
		z[2] = CRed(x[2]+modulus-y[2], modulus)
		z[3] = CRed(x[3]+modulus-y[3], modulus)
		z[4] = CRed(x[4]+modulus-y[4], modulus)
		z[5] = CRed(x[5]+modulus-y[5], modulus)
		z[6] = CRed(x[6]+modulus-y[6], modulus)
		z[7] = CRed(x[7]+modulus-y[7], modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = CRed(p1[i]+modulus-p2[i], modulus)
	}
}

// NegVec evaluates p2 = -p1 mod modulus.
// p1, p2 must be of the same size and p1 must be in [0, modulus).
func NegVec(p1, p2 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = (modulus - x[0]) & sign(x[0])
		z[1] = (modulus - x[1]) & sign(x[1])
		z[2] = (modulus - x[2]) & sign(x[2])
		z[3] = (modulus - x[3]) & sign(x[3])
		z[4] = (modulus - x[4]) & sign(x[4])
		z[5] = (modulus - x[5]) & sign(x[5])
		z[6] = (modulus - x[6]) & sign(x[6])
		z[7] = (modulus - x[7]) & sign(x[7])
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = (modulus - p1[i]) & sign(p1[i])
	}
}

// sign returns 2^64-1 if x != 0 and 0 otherwise.
func sign(x uint64) uint64 {
	if x != 0 {
		return 0xFFFFFFFFFFFFFFFF
	}
	return 0
}

// BarrettReduceVec evaluates p2 = p1 mod modulus.
// p1, p2 must be of the same size.
func BarrettReduceVec(p1, p2 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = BRedAdd(x[0], modulus, bredconstant)
		z[1] = BRedAdd(x[1], modulus, bredconstant)
		z[2] = BRedAdd(x[2], modulus, bredconstant)
		z[3] = BRedAdd(x[3], modulus, bredconstant)
		z[4] = BRedAdd(x[4], modulus, bredconstant)
		z[5] = BRedAdd(x[5], modulus, bredconstant)
		z[6] = BRedAdd(x[6], modulus, bredconstant)
		z[7] = BRedAdd(x[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = BRedAdd(p1[i], modulus, bredconstant)
	}
}

// MulBarrettReduceVec evaluates p3 = p1 * p2 mod modulus with Barrett
// reduction. p1, p2, p3 must be of the same size.
func MulBarrettReduceVec(p1, p2, p3 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = BRed(x[0], y[0], modulus, bredconstant)
		z[1] = BRed(x[1], y[1], modulus, bredconstant)
		z[2] = BRed(x[2], y[2], modulus, bredconstant)
		z[3] = BRed(x[3], y[3], modulus, bredconstant)
		z[4] = BRed(x[4], y[4], modulus, bredconstant)
		z[5] = BRed(x[5], y[5], modulus, bredconstant)
		z[6] = BRed(x[6], y[6], modulus, bredconstant)
		z[7] = BRed(x[7], y[7], modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = BRed(p1[i], p2[i], modulus, bredconstant)
	}
}

// MulShoupVec evaluates p3 = p1 * p2 mod modulus with Shoup
// multiplication, given p2shoup the precomputed Shoup constants of p2.
// p1, p2, p2shoup, p3 must be of the same size.
func MulShoupVec(p1, p2, p2shoup, p3 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N || len(p2shoup) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p2shoup)=%d len(p3)=%d", N, len(p2), len(p2shoup), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		s := (*[8]uint64)(unsafe.Pointer(&p2shoup[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = SRed(x[0], y[0], s[0], modulus)
		z[1] = SRed(x[1], y[1], s[1], modulus)
		z[2] = SRed(x[2], y[2], s[2], modulus)
		z[3] = SRed(x[3], y[3], s[3], modulus)
		z[4] = SRed(x[4], y[4], s[4], modulus)
		z[5] = SRed(x[5], y[5], s[5], modulus)
		z[6] = SRed(x[6], y[6], s[6], modulus)
		z[7] = SRed(x[7], y[7], s[7], modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = SRed(p1[i], p2[i], p2shoup[i], modulus)
	}
}

// MulScalarBarrettVec evaluates p2 = p1 * scalar mod modulus with
// Barrett reduction. p1, p2 must be of the same size.
func MulScalarBarrettVec(p1 []uint64, scalar uint64, p2 []uint64, modulus uint64, bredconstant [2]uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = BRed(x[0], scalar, modulus, bredconstant)
		z[1] = BRed(x[1], scalar, modulus, bredconstant)
		z[2] = BRed(x[2], scalar, modulus, bredconstant)
		z[3] = BRed(x[3], scalar, modulus, bredconstant)
		z[4] = BRed(x[4], scalar, modulus, bredconstant)
		z[5] = BRed(x[5], scalar, modulus, bredconstant)
		z[6] = BRed(x[6], scalar, modulus, bredconstant)
		z[7] = BRed(x[7], scalar, modulus, bredconstant)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = BRed(p1[i], scalar, modulus, bredconstant)
	}
}

// MulScalarShoupVec evaluates p2 = p1 * scalar mod modulus with Shoup
// multiplication, given scalarshoup the precomputed Shoup constant of
// scalar. p1, p2 must be of the same size.
func MulScalarShoupVec(p1 []uint64, scalar, scalarshoup uint64, p2 []uint64, modulus uint64) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = SRed(x[0], scalar, scalarshoup, modulus)
		z[1] = SRed(x[1], scalar, scalarshoup, modulus)
		z[2] = SRed(x[2], scalar, scalarshoup, modulus)
		z[3] = SRed(x[3], scalar, scalarshoup, modulus)
		z[4] = SRed(x[4], scalar, scalarshoup, modulus)
		z[5] = SRed(x[5], scalar, scalarshoup, modulus)
		z[6] = SRed(x[6], scalar, scalarshoup, modulus)
		z[7] = SRed(x[7], scalar, scalarshoup, modulus)
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = SRed(p1[i], scalar, scalarshoup, modulus)
	}
}

// ZeroVec sets p1 to zero.
func ZeroVec(p1 []uint64) {
	for i := range p1 {
		p1[i] = 0
	}
}
