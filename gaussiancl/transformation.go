package gaussiancl

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when a correlation value lies outside the valid
// domain of a transformation's inverse.
var ErrDomain = errors.New("gaussiancl: correlation outside transformation domain")

// Transformation maps Gaussian correlation values to the correlation values
// of the transformed field, elementwise. dst and x always have equal length;
// implementations must not retain either slice.
type Transformation interface {
	// Transform writes the transformed correlation f(x) to dst.
	Transform(dst, x []float64)

	// Derivative writes the derivative f'(x) of the forward transform to dst.
	Derivative(dst, x []float64)

	// Inverse writes the inverse transform f^{-1}(x) to dst. It reports
	// ErrDomain when a value has no preimage.
	Inverse(dst, x []float64) error

	// InverseDerivative writes the derivative of the inverse transform to
	// dst, with the same domain restrictions as Inverse.
	InverseDerivative(dst, x []float64) error
}

// Lognormal is the transformation for a lognormal field Y = e^X - lambda
// with alpha = E[Y] + lambda. Alpha2 is the second field's alpha for
// cross-spectra of two lognormal fields; zero means "same as Alpha".
type Lognormal struct {
	Alpha  float64
	Alpha2 float64
}

func (t Lognormal) alphaProduct() float64 {
	a2 := t.Alpha2
	if a2 == 0 {
		a2 = t.Alpha
	}

	return t.Alpha * a2
}

// Transform computes (e^x - 1) * alpha1 * alpha2.
func (t Lognormal) Transform(dst, x []float64) {
	aa := t.alphaProduct()
	for i, v := range x {
		dst[i] = math.Expm1(v) * aa
	}
}

// Derivative computes e^x * alpha1 * alpha2.
func (t Lognormal) Derivative(dst, x []float64) {
	aa := t.alphaProduct()
	for i, v := range x {
		dst[i] = math.Exp(v) * aa
	}
}

// Inverse computes log(1 + x/(alpha1*alpha2)). Values with
// 1 + x/(alpha1*alpha2) <= 0 are non-physical and yield ErrDomain.
func (t Lognormal) Inverse(dst, x []float64) error {
	aa := t.alphaProduct()
	for i, v := range x {
		r := v / aa
		if r <= -1 {
			return fmt.Errorf("%w: 1+xi/(alpha1*alpha2) = %g at point %d", ErrDomain, 1+r, i)
		}

		dst[i] = math.Log1p(r)
	}

	return nil
}

// InverseDerivative computes 1 / (x + alpha1*alpha2).
func (t Lognormal) InverseDerivative(dst, x []float64) error {
	aa := t.alphaProduct()
	for i, v := range x {
		if v+aa <= 0 {
			return fmt.Errorf("%w: xi + alpha1*alpha2 = %g at point %d", ErrDomain, v+aa, i)
		}

		dst[i] = 1 / (v + aa)
	}

	return nil
}

// LognormalNormal is the transformation for the cross-correlation of a
// lognormal field with alpha and a Gaussian field: a linear scaling by alpha.
type LognormalNormal struct {
	Alpha float64
}

// Transform computes x * alpha.
func (t LognormalNormal) Transform(dst, x []float64) {
	for i, v := range x {
		dst[i] = v * t.Alpha
	}
}

// Derivative is the constant alpha.
func (t LognormalNormal) Derivative(dst, x []float64) {
	for i := range x {
		dst[i] = t.Alpha
	}
}

// Inverse computes x / alpha. A zero alpha yields ErrDomain.
func (t LognormalNormal) Inverse(dst, x []float64) error {
	if t.Alpha == 0 {
		return fmt.Errorf("%w: alpha is zero", ErrDomain)
	}

	for i, v := range x {
		dst[i] = v / t.Alpha
	}

	return nil
}

// InverseDerivative is the constant 1/alpha. A zero alpha yields ErrDomain.
func (t LognormalNormal) InverseDerivative(dst, x []float64) error {
	if t.Alpha == 0 {
		return fmt.Errorf("%w: alpha is zero", ErrDomain)
	}

	for i := range x {
		dst[i] = 1 / t.Alpha
	}

	return nil
}

// Normal is the identity transformation of a Gaussian field.
type Normal struct{}

// Transform copies x to dst.
func (Normal) Transform(dst, x []float64) {
	copy(dst, x)
}

// Derivative is the constant one.
func (Normal) Derivative(dst, x []float64) {
	for i := range x {
		dst[i] = 1
	}
}

// Inverse copies x to dst.
func (Normal) Inverse(dst, x []float64) error {
	copy(dst, x)
	return nil
}

// InverseDerivative is the constant one.
func (Normal) InverseDerivative(dst, x []float64) error {
	for i := range x {
		dst[i] = 1
	}

	return nil
}
