package veckernel

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-veckernel/internal/testutil"
)

func TestInterleaveRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 7, 64, 1000}

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src, _ := complexOperands(n)

			re := make([]float64, n)
			im := make([]float64, n)
			DeinterleaveBlock(re, im, src)

			back := make([]complex128, n)
			InterleaveBlock(back, re, im)

			for i := 0; i < n; i++ {
				if back[i] != src[i] {
					t.Errorf("round trip[%d]: got %v, want %v", i, back[i], src[i])
				}
			}
		})
	}
}

func TestMagnitudeBlock(t *testing.T) {
	const n = 100
	src, _ := complexOperands(n)

	want := make([]float64, n)
	for i, c := range src {
		want[i] = math.Hypot(real(c), imag(c))
	}

	dst := make([]float64, n)
	MagnitudeBlock(dst, src)
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-9)

	// Planar fast path agrees with the interleaved front-end.
	re := make([]float64, n)
	im := make([]float64, n)
	DeinterleaveBlock(re, im, src)

	planar := make([]float64, n)
	MagnitudePlanarBlock(planar, re, im)
	testutil.RequireSliceNearlyEqual(t, planar, dst, 0)
}

func TestPowerBlock(t *testing.T) {
	const n = 100
	src, _ := complexOperands(n)

	want := make([]float64, n)
	for i, c := range src {
		want[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	dst := make([]float64, n)
	PowerBlock(dst, src)
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-9)

	re := make([]float64, n)
	im := make([]float64, n)
	DeinterleaveBlock(re, im, src)

	planar := make([]float64, n)
	PowerPlanarBlock(planar, re, im)
	testutil.RequireSliceNearlyEqual(t, planar, dst, 0)
}

func TestMagnitudePowerRelation(t *testing.T) {
	// |c|^2 computed by PowerBlock equals MagnitudeBlock squared.
	const n = 64
	src, _ := complexOperands(n)

	mag := make([]float64, n)
	pow := make([]float64, n)
	MagnitudeBlock(mag, src)
	PowerBlock(pow, src)

	magSq := make([]float64, n)
	MulBlock(magSq, mag, mag)
	testutil.RequireSliceNearlyEqual(t, magSq, pow, 1e-9)
}

func TestMagnitudeBlockScratchReuse(t *testing.T) {
	// Pooled scratch reuse across calls must not change results.
	const n = 128
	src := testutil.DeterministicComplexNoise(5, 1.0, n)

	first := make([]float64, n)
	MagnitudeBlock(first, src)
	testutil.RequireFinite(t, first)

	second := make([]float64, n)
	MagnitudeBlock(second, src)

	d, err := testutil.MaxAbsDiff(first, second)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Fatalf("repeated call differs by %v", d)
	}
}

func TestComplexUtilZeroLength(t *testing.T) {
	DeinterleaveBlock(nil, nil, nil)
	InterleaveBlock(nil, nil, nil)
	MagnitudeBlock(nil, nil)
	PowerBlock([]float64{}, []complex128{})
}

func TestComplexUtilPanic(t *testing.T) {
	cases := []struct {
		name string
		call func()
	}{
		{"DeinterleaveBlock", func() {
			DeinterleaveBlock(make([]float64, 3), make([]float64, 4), make([]complex128, 4))
		}},
		{"InterleaveBlock", func() {
			InterleaveBlock(make([]complex128, 4), make([]float64, 3), make([]float64, 4))
		}},
		{"MagnitudeBlock", func() {
			MagnitudeBlock(make([]float64, 3), make([]complex128, 4))
		}},
		{"PowerBlock", func() {
			PowerBlock(make([]float64, 4), make([]complex128, 3))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s should panic on mismatched lengths", tc.name)
				}
			}()
			tc.call()
		})
	}
}
