// Package buffer provides reusable real and complex sample buffers plus
// pools for allocation-friendly block processing. The veckernel functions
// accept raw []float64 and []complex128 slices and never allocate; Buffer
// and ComplexBuffer are optional caller-side conveniences for managing
// allocation and reuse in hot paths.
package buffer
