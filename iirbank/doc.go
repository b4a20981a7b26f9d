// Package iirbank models the configuration data of a fixed-point cascaded
// IIR filter bank: per filter, a biquad cascade length, a table of
// quantized (Q-format) coefficients, and the Q-format exponent used to
// interpret them. Filters are grouped into order classes, mirroring the
// order/index layout the configuration is generated in.
//
// The package is a pure data surface. It validates, inspects, and
// serializes bank configurations and can dequantize coefficients for
// design and debugging tools, but it does not implement any filtering;
// coefficient tables arrive externally generated and are consumed by
// whatever component eventually runs the filters.
package iirbank
