// Package normcl converts angular power spectra of spherical random fields
// constructed from normal fields. It mirrors the lognormcl conversions and
// adds the lognormal cross normal case, where the correlation scales
// linearly with alpha.
package normcl

import (
	"github.com/cwbudde/algo-sphcl/gaussiancl"
)

// Lognormal converts a normal-field spectrum to the corresponding
// lognormal-field spectrum. alpha2 zero means "same as alpha".
func Lognormal(cl []float64, alpha, alpha2 float64) ([]float64, error) {
	return gaussiancl.Lim(cl, gaussiancl.Lognormal{Alpha: alpha, Alpha2: alpha2})
}

// LognormalInv converts a lognormal-field spectrum back to the spectrum of
// its constituent normal field. It reports [gaussiancl.ErrDomain] for
// non-physical input.
func LognormalInv(cl []float64, alpha, alpha2 float64) ([]float64, error) {
	return gaussiancl.Lim(cl, gaussiancl.Lognormal{Alpha: alpha, Alpha2: alpha2}, gaussiancl.WithInverse())
}

// LognormalNormal converts the cross-spectrum of a normal field and a second
// normal field into the cross-spectrum of the lognormal transform of the
// first with the second: a scaling by alpha.
func LognormalNormal(cl []float64, alpha float64) ([]float64, error) {
	return gaussiancl.Lim(cl, gaussiancl.LognormalNormal{Alpha: alpha})
}

// LognormalNormalInv undoes [LognormalNormal]. A zero alpha yields
// [gaussiancl.ErrDomain].
func LognormalNormalInv(cl []float64, alpha float64) ([]float64, error) {
	return gaussiancl.Lim(cl, gaussiancl.LognormalNormal{Alpha: alpha}, gaussiancl.WithInverse())
}
