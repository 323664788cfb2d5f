// Package lognormcl converts between the angular power spectra of lognormal
// random fields on the sphere and those of their constituent normal fields.
//
// The lognormal convention is Y = e^X - lambda with alpha = E[Y] + lambda;
// alpha2 is the second field's alpha for cross-spectra and zero means "same
// as alpha".
package lognormcl

import (
	"github.com/cwbudde/algo-sphcl/gaussiancl"
)

// N2Ln converts the angular power spectrum of a normal field to that of the
// lognormal field obtained by exponentiating it. The conversion is the
// closed form (e^xi - 1) * alpha * alpha2 in correlation space; no iteration
// is involved. The input is not mutated.
func N2Ln(cl []float64, alpha, alpha2 float64) ([]float64, error) {
	return gaussiancl.Lim(cl, gaussiancl.Lognormal{Alpha: alpha, Alpha2: alpha2})
}

// Ln2N converts the angular power spectrum of a lognormal field to that of
// its constituent normal field via log(1 + xi/(alpha*alpha2)). It reports
// [gaussiancl.ErrDomain] when 1 + xi/(alpha*alpha2) <= 0 anywhere, which is
// non-physical; no NaN is ever produced. The input is not mutated.
func Ln2N(cl []float64, alpha, alpha2 float64) ([]float64, error) {
	return gaussiancl.Lim(cl, gaussiancl.Lognormal{Alpha: alpha, Alpha2: alpha2}, gaussiancl.WithInverse())
}
