package veckernel_test

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-veckernel"
	"github.com/cwbudde/algo-veckernel/internal/testutil"
)

// circularConvolveRef computes the circular convolution of a and b directly.
func circularConvolveRef(a, b []float64) []float64 {
	n := len(a)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < n; k++ {
			sum += a[k] * b[(i-k+n)%n]
		}
		out[i] = sum
	}
	return out
}

// TestConvolutionTheorem verifies that the frequency-domain product computed
// by MulComplexBlock matches direct circular convolution:
// IFFT(FFT(a) * FFT(b)) == a (*) b.
func TestConvolutionTheorem(t *testing.T) {
	const n = 64

	a := testutil.DeterministicNoise(1, 1.0, n)
	b := testutil.DeterministicNoise(2, 1.0, n)
	want := circularConvolveRef(a, b)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64(%d): %v", n, err)
	}

	aFreq := make([]complex128, n)
	for i, v := range a {
		aFreq[i] = complex(v, 0)
	}
	if err := plan.Forward(aFreq, aFreq); err != nil {
		t.Fatalf("forward FFT: %v", err)
	}

	bFreq := make([]complex128, n)
	for i, v := range b {
		bFreq[i] = complex(v, 0)
	}
	if err := plan.Forward(bFreq, bFreq); err != nil {
		t.Fatalf("forward FFT: %v", err)
	}

	veckernel.MulComplexBlockInPlace(aFreq, bFreq)

	if err := plan.Inverse(aFreq, aFreq); err != nil {
		t.Fatalf("inverse FFT: %v", err)
	}

	got := make([]float64, n)
	for i, c := range aFreq {
		got[i] = real(c)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

// TestSpectralMagnitudeOfProduct checks that multiplying two spectra and
// taking the magnitude agrees with multiplying the individual magnitudes.
func TestSpectralMagnitudeOfProduct(t *testing.T) {
	const n = 32

	x := testutil.DeterministicNoise(3, 1.0, n)
	y := testutil.DeterministicSine(4, float64(n), 1.0, n)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64(%d): %v", n, err)
	}

	xFreq := make([]complex128, n)
	for i, v := range x {
		xFreq[i] = complex(v, 0)
	}
	if err := plan.Forward(xFreq, xFreq); err != nil {
		t.Fatalf("forward FFT: %v", err)
	}

	yFreq := make([]complex128, n)
	for i, v := range y {
		yFreq[i] = complex(v, 0)
	}
	if err := plan.Forward(yFreq, yFreq); err != nil {
		t.Fatalf("forward FFT: %v", err)
	}

	xMag := make([]float64, n)
	yMag := make([]float64, n)
	veckernel.MagnitudeBlock(xMag, xFreq)
	veckernel.MagnitudeBlock(yMag, yFreq)

	prod := make([]complex128, n)
	veckernel.MulComplexBlock(prod, xFreq, yFreq)

	prodMag := make([]float64, n)
	veckernel.MagnitudeBlock(prodMag, prod)

	magProduct := make([]float64, n)
	veckernel.MulBlock(magProduct, xMag, yMag)

	testutil.RequireSliceNearlyEqual(t, prodMag, magProduct, 1e-9)
}
