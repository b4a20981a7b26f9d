// Package veckernel provides element-wise vector arithmetic kernels for
// block-based DSP processing: subtraction, addition, and multiplication
// over real-valued sample blocks, and multiplication over complex-valued
// sample blocks.
//
// All kernels are stateless single-pass functions over caller-supplied
// slices. They never allocate, never retain references past the call, and
// write only to the destination slice. Destination slices may alias the
// source slices; complex kernels read both operand components before
// writing either result component, so full in-place use is safe.
//
// The package intentionally does not implement filtering itself. The
// companion iirbank package carries the filter-bank configuration data
// that downstream filter implementations consume.
package veckernel
