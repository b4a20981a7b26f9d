package veckernel

// MulComplexBlock performs element-wise complex multiplication:
// dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
//
// dst may be the same slice as a and/or b. Native complex128
// multiplication reads both operand components before producing either
// result component, so in-place use never observes a half-written pair.
func MulComplexBlock(dst, a, b []complex128) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulComplexBlockInPlace performs in-place element-wise complex
// multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulComplexBlockInPlace(dst, src []complex128) {
	if len(dst) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// MulComplexPlanarBlock performs element-wise complex multiplication over
// split real/imaginary planes:
//
//	dst[i] = (aRe[i] + j*aIm[i]) * (bRe[i] + j*bIm[i])
//
// All six slices must have equal length. Panics if lengths differ.
//
// The destination planes may alias any of the source planes. Both operand
// pairs are captured in temporaries before either component of dst is
// written, so full in-place use (dstRe == aRe, dstIm == aIm, and so on)
// is safe.
func MulComplexPlanarBlock(dstRe, dstIm, aRe, aIm, bRe, bIm []float64) {
	n := len(dstRe)
	if len(dstIm) != n || len(aRe) != n || len(aIm) != n ||
		len(bRe) != n || len(bIm) != n {
		panic("veckernel: slice length mismatch")
	}
	for i := 0; i < n; i++ {
		br, bi := aRe[i], aIm[i]
		cr, ci := bRe[i], bIm[i]
		dstRe[i] = br*cr - bi*ci
		dstIm[i] = br*ci + bi*cr
	}
}
