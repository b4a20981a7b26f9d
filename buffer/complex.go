package buffer

// ComplexBuffer wraps a complex128 slice with reuse-friendly semantics.
// The complex kernels accept raw []complex128; use Samples() to bridge.
type ComplexBuffer struct {
	samples []complex128
}

// NewComplex returns a zero-filled ComplexBuffer of the given length.
func NewComplex(length int) *ComplexBuffer {
	if length < 0 {
		length = 0
	}
	return &ComplexBuffer{samples: make([]complex128, length)}
}

// FromComplexSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the ComplexBuffer and vice versa.
func FromComplexSlice(s []complex128) *ComplexBuffer {
	return &ComplexBuffer{samples: s}
}

// Samples returns the underlying slice.
func (b *ComplexBuffer) Samples() []complex128 {
	return b.samples
}

// Len returns the current number of samples.
func (b *ComplexBuffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *ComplexBuffer) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *ComplexBuffer) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]complex128, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *ComplexBuffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]complex128, n)
		copy(s, b.samples)
		b.samples = s
	}
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *ComplexBuffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *ComplexBuffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	for i := start; i < end; i++ {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the buffer.
func (b *ComplexBuffer) Copy() *ComplexBuffer {
	s := make([]complex128, len(b.samples))
	copy(s, b.samples)
	return &ComplexBuffer{samples: s}
}
