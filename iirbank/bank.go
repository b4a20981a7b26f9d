package iirbank

import (
	"errors"
	"fmt"
	"math"
)

// CoeffsPerSection is the number of quantized coefficients per biquad
// section: b0, b1, b2, a1, a2 (a0 is normalized to 1 and not stored).
const CoeffsPerSection = 5

// maxQFactor is the largest representable Q-format exponent for int32
// coefficients (Q0.31).
const maxQFactor = 31

var (
	ErrEmptyBank    = errors.New("iirbank: bank has no order classes")
	ErrEmptyClass   = errors.New("iirbank: order class has no filters")
	ErrSectionCount = errors.New("iirbank: section count must be >= 1")
	ErrCoeffCount   = errors.New("iirbank: coefficient count does not match section count")
	ErrQFactorRange = errors.New("iirbank: q factor exceeds int32 fraction bits")
	ErrClassRange   = errors.New("iirbank: order class index out of range")
	ErrFilterRange  = errors.New("iirbank: filter index out of range")
	ErrSectionRange = errors.New("iirbank: section index out of range")
)

// Filter is the configuration of one cascaded IIR filter: the number of
// biquad sections, the Q-format exponent, and Sections*CoeffsPerSection
// quantized coefficients laid out section by section.
type Filter struct {
	Sections int     `json:"sections"`
	QFactor  uint    `json:"qFactor"`
	Coeffs   []int32 `json:"coeffs"`
}

// OrderClass groups the filters that share one cascade-order slot.
type OrderClass struct {
	Filters []Filter `json:"filters"`
}

// Bank is a complete filter-bank configuration, indexed by order class
// and filter index within the class.
type Bank struct {
	Classes []OrderClass `json:"classes"`
}

// SectionCoefficients holds the dequantized transfer-function coefficients
// of a single biquad section.
type SectionCoefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Validate checks the structural invariants of one filter.
func (f *Filter) Validate() error {
	if f.Sections < 1 {
		return fmt.Errorf("%w (got %d)", ErrSectionCount, f.Sections)
	}
	if f.QFactor > maxQFactor {
		return fmt.Errorf("%w (got %d)", ErrQFactorRange, f.QFactor)
	}
	if want := f.Sections * CoeffsPerSection; len(f.Coeffs) != want {
		return fmt.Errorf("%w (got %d, want %d)", ErrCoeffCount, len(f.Coeffs), want)
	}
	return nil
}

// Validate checks the structural invariants of the whole bank: at least
// one class, at least one filter per class, and per-filter consistency.
func (b *Bank) Validate() error {
	if len(b.Classes) == 0 {
		return ErrEmptyBank
	}
	for ci, class := range b.Classes {
		if len(class.Filters) == 0 {
			return fmt.Errorf("class %d: %w", ci, ErrEmptyClass)
		}
		for fi := range class.Filters {
			if err := class.Filters[fi].Validate(); err != nil {
				return fmt.Errorf("class %d, filter %d: %w", ci, fi, err)
			}
		}
	}
	return nil
}

// NumClasses returns the number of order classes.
func (b *Bank) NumClasses() int {
	return len(b.Classes)
}

// Class returns the order class at index i.
func (b *Bank) Class(i int) (*OrderClass, error) {
	if i < 0 || i >= len(b.Classes) {
		return nil, fmt.Errorf("%w (index %d of %d)", ErrClassRange, i, len(b.Classes))
	}
	return &b.Classes[i], nil
}

// Filter returns the filter at the given class and index.
func (b *Bank) Filter(class, index int) (*Filter, error) {
	c, err := b.Class(class)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(c.Filters) {
		return nil, fmt.Errorf("%w (index %d of %d in class %d)",
			ErrFilterRange, index, len(c.Filters), class)
	}
	return &c.Filters[index], nil
}

// SectionCoeffs returns the five quantized coefficients of section s as a
// subslice view of the filter's coefficient table. Callers must treat the
// returned slice as read-only.
func (f *Filter) SectionCoeffs(s int) ([]int32, error) {
	if s < 0 || s >= f.Sections {
		return nil, fmt.Errorf("%w (index %d of %d)", ErrSectionRange, s, f.Sections)
	}
	start := s * CoeffsPerSection
	return f.Coeffs[start : start+CoeffsPerSection], nil
}

// DequantizeSection interprets section s under the filter's Q format:
// value = coeff * 2^-QFactor.
func (f *Filter) DequantizeSection(s int) (SectionCoefficients, error) {
	raw, err := f.SectionCoeffs(s)
	if err != nil {
		return SectionCoefficients{}, err
	}
	shift := -int(f.QFactor)
	return SectionCoefficients{
		B0: math.Ldexp(float64(raw[0]), shift),
		B1: math.Ldexp(float64(raw[1]), shift),
		B2: math.Ldexp(float64(raw[2]), shift),
		A1: math.Ldexp(float64(raw[3]), shift),
		A2: math.Ldexp(float64(raw[4]), shift),
	}, nil
}

// Dequantize interprets all sections under the filter's Q format.
// The filter must be valid; call Validate first on untrusted data.
func (f *Filter) Dequantize() []SectionCoefficients {
	out := make([]SectionCoefficients, f.Sections)
	for s := range out {
		sc, err := f.DequantizeSection(s)
		if err != nil {
			// Sections in [0, f.Sections) cannot be out of range.
			panic(err)
		}
		out[s] = sc
	}
	return out
}
