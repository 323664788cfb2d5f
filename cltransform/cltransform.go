package cltransform

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate/quad"
)

// ErrEmptySpectrum is returned when a transform is requested for a
// zero-length spectrum.
var ErrEmptySpectrum = errors.New("cltransform: empty spectrum")

// ErrSizeMismatch is returned when an input slice does not match the plan
// size.
var ErrSizeMismatch = errors.New("cltransform: input length does not match plan size")

const fourPi = 4 * math.Pi

// Plan holds the precomputed quadrature rule for transforms of a fixed size.
//
// A plan of size n maps between n spectrum coefficients (multipoles 0..n-1)
// and n correlation values at the Gauss-Legendre nodes. Plans are safe for
// concurrent use; all methods allocate their output and never mutate their
// input.
type Plan struct {
	n   int
	x   []float64 // Gauss-Legendre nodes on [-1, 1]
	w   []float64 // quadrature weights
	fac []float64 // multipole prefactors (2l+1)/(4*pi)
}

// NewPlan creates a transform plan of size n.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, ErrEmptySpectrum
	}

	p := &Plan{
		n:   n,
		x:   make([]float64, n),
		w:   make([]float64, n),
		fac: make([]float64, n),
	}

	quad.Legendre{}.FixedLocations(p.x, p.w, -1, 1)

	for l := range p.fac {
		p.fac[l] = (2*float64(l) + 1) / fourPi
	}

	return p, nil
}

// Size returns the transform size n.
func (p *Plan) Size() int { return p.n }

// Nodes returns a copy of the quadrature nodes x_j = cos(theta_j).
func (p *Plan) Nodes() []float64 {
	return append([]float64(nil), p.x...)
}

// CltoCorr evaluates the angular correlation function of the spectrum cl at
// the plan's quadrature nodes. len(cl) must equal the plan size.
func (p *Plan) CltoCorr(cl []float64) ([]float64, error) {
	if len(cl) != p.n {
		return nil, ErrSizeMismatch
	}

	scaled := make([]float64, p.n)
	vecmath.MulBlock(scaled, cl, p.fac)

	corr := make([]float64, p.n)
	for j, x := range p.x {
		corr[j] = legendreSum(scaled, x)
	}

	return corr, nil
}

// CorrToCl recovers the angular power spectrum from correlation values at
// the plan's quadrature nodes. len(corr) must equal the plan size.
func (p *Plan) CorrToCl(corr []float64) ([]float64, error) {
	if len(corr) != p.n {
		return nil, ErrSizeMismatch
	}

	cl := make([]float64, p.n)
	for j, x := range p.x {
		legendreAccumulate(cl, 2*math.Pi*p.w[j]*corr[j], x)
	}

	return cl, nil
}

// CltoCorr is a one-shot conversion from spectrum to correlation values,
// building a plan of size len(cl) internally.
func CltoCorr(cl []float64) ([]float64, error) {
	p, err := NewPlan(len(cl))
	if err != nil {
		return nil, err
	}

	return p.CltoCorr(cl)
}

// CorrToCl is a one-shot conversion from correlation values to a spectrum,
// building a plan of size len(corr) internally.
func CorrToCl(corr []float64) ([]float64, error) {
	p, err := NewPlan(len(corr))
	if err != nil {
		return nil, err
	}

	return p.CorrToCl(corr)
}

// legendreSum evaluates sum_l c[l] * P_l(x) using the three-term recurrence
// (l+1)*P_{l+1} = (2l+1)*x*P_l - l*P_{l-1}.
func legendreSum(c []float64, x float64) float64 {
	sum := c[0]
	if len(c) == 1 {
		return sum
	}

	pPrev, pCur := 1.0, x
	sum += c[1] * x

	for l := 1; l < len(c)-1; l++ {
		fl := float64(l)
		pNext := ((2*fl+1)*x*pCur - fl*pPrev) / (fl + 1)
		sum += c[l+1] * pNext
		pPrev, pCur = pCur, pNext
	}

	return sum
}

// legendreAccumulate adds c * P_l(x) to dst[l] for every multipole l.
func legendreAccumulate(dst []float64, c, x float64) {
	dst[0] += c
	if len(dst) == 1 {
		return
	}

	pPrev, pCur := 1.0, x
	dst[1] += c * x

	for l := 1; l < len(dst)-1; l++ {
		fl := float64(l)
		pNext := ((2*fl+1)*x*pCur - fl*pPrev) / (fl + 1)
		dst[l+1] += c * pNext
		pPrev, pCur = pCur, pNext
	}
}
