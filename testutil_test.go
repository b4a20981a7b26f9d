package veckernel

import (
	"math"
	"strconv"
)

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
	{"64K", 65536},
}

// Test helper functions shared across all test files

func closeEnough(a, b float64) bool {
	const epsilon = 1e-14
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func closeEnoughComplex(a, b complex128) bool {
	return closeEnough(real(a), real(b)) && closeEnough(imag(a), imag(b))
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}
