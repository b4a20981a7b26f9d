package veckernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for interleaved-to-planar unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// DeinterleaveBlock splits src into real and imaginary planes:
// re[i] = real(src[i]), im[i] = imag(src[i]).
// Slices must have equal length. Panics if lengths differ.
func DeinterleaveBlock(re, im []float64, src []complex128) {
	if len(re) != len(src) || len(im) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	for i, c := range src {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// InterleaveBlock joins real and imaginary planes into dst:
// dst[i] = complex(re[i], im[i]).
// Slices must have equal length. Panics if lengths differ.
func InterleaveBlock(dst []complex128, re, im []float64) {
	if len(re) != len(dst) || len(im) != len(dst) {
		panic("veckernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = complex(re[i], im[i])
	}
}

// MagnitudePlanarBlock computes dst[i] = sqrt(re[i]^2 + im[i]^2) over split
// planes, delegating to algo-vecmath (SIMD-accelerated where available).
// Slices must have equal length. Panics if lengths differ.
func MagnitudePlanarBlock(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerPlanarBlock computes dst[i] = re[i]^2 + im[i]^2 over split planes,
// delegating to algo-vecmath (SIMD-accelerated where available).
// Slices must have equal length. Panics if lengths differ.
func PowerPlanarBlock(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// MagnitudeBlock computes dst[i] = |src[i]| for an interleaved complex
// block. Slices must have equal length. Panics if lengths differ.
//
// Scratch planes are pooled internally, so in steady state this performs
// no allocation.
func MagnitudeBlock(dst []float64, src []complex128) {
	if len(dst) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}

	re, im, buf := getScratch(len(src))
	DeinterleaveBlock(re, im, src)
	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// PowerBlock computes dst[i] = |src[i]|^2 for an interleaved complex
// block. Slices must have equal length. Panics if lengths differ.
//
// Scratch planes are pooled internally, so in steady state this performs
// no allocation.
func PowerBlock(dst []float64, src []complex128) {
	if len(dst) != len(src) {
		panic("veckernel: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}

	re, im, buf := getScratch(len(src))
	DeinterleaveBlock(re, im, src)
	vecmath.Power(dst, re, im)
	putScratch(buf)
}
