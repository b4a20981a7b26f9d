package veckernel

// SubBlock performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may be the same slice as a and/or b; each element depends only on
// its own index.
func SubBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// SubBlockInPlace performs in-place element-wise subtraction: dst[i] -= src[i].
// Slices must have equal length. Panics if lengths differ.
func SubBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] -= src[i]
	}
}

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may be the same slice as a and/or b.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may be the same slice as a and/or b.
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}
