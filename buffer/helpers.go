package buffer

// EnsureLen returns a slice with the requested length, reusing buf capacity
// if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// EnsureLenComplex returns a slice with the requested length, reusing buf
// capacity if possible.
func EnsureLenComplex(buf []complex128, n int) []complex128 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]complex128, n)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// CopyIntoComplex copies src into dst and returns the number of copied
// elements.
func CopyIntoComplex(dst, src []complex128) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
