package gaussiancl

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sphcl/cltransform"
)

// ErrNotConverged is returned by [Solve] when the iteration cap is reached
// before the convergence criterion is met. The best solution found so far is
// still returned.
var ErrNotConverged = errors.New("gaussiancl: maximum iterations reached without convergence")

// ErrStalled is returned by [Solve] when the line search can no longer
// improve the residual. The best solution found so far is still returned.
var ErrStalled = errors.New("gaussiancl: no further improvement possible")

// ErrBadPadding is returned when the padded transform size is smaller than
// the spectrum.
var ErrBadPadding = errors.New("gaussiancl: padded size smaller than spectrum length")

// ErrBadInitial is returned when an initial guess does not match the
// spectrum length.
var ErrBadInitial = errors.New("gaussiancl: initial guess length does not match spectrum")

// Result reports the outcome of a [Solve] call.
type Result struct {
	// Iterations is the number of Newton iterations performed.
	Iterations int

	// Tol is the achieved maximum relative residual over all multipoles
	// with a nonzero residual.
	Tol float64

	// Converged reports whether the convergence criterion was met.
	Converged bool
}

// Lim applies a transformation to a band-limited angular power spectrum:
// the spectrum is converted to correlation values, transformed pointwise,
// and converted back.
//
// [WithInverse] and [WithDerivative] select the inverse transform or the
// derivative; [WithPadding] evaluates the transform on a zero-padded
// spectrum and truncates the result back to len(cl), which reduces aliasing
// from the nonlinearity.
func Lim(cl []float64, t Transformation, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := len(cl)
	if m == 0 {
		return nil, cltransform.ErrEmptySpectrum
	}

	n := cfg.size
	if n == 0 {
		n = m
	}

	if n < m {
		return nil, ErrBadPadding
	}

	plan, err := cltransform.NewPlan(n)
	if err != nil {
		return nil, err
	}

	padded := make([]float64, n)
	copy(padded, cl)

	corr, err := plan.CltoCorr(padded)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)

	switch {
	case cfg.inverse && cfg.derivative:
		err = t.InverseDerivative(out, corr)
	case cfg.inverse:
		err = t.Inverse(out, corr)
	case cfg.derivative:
		t.Derivative(out, corr)
	default:
		t.Transform(out, corr)
	}

	if err != nil {
		return nil, err
	}

	full, err := plan.CorrToCl(out)
	if err != nil {
		return nil, err
	}

	return full[:m:m], nil
}

// Solve finds the Gaussian angular power spectrum gl whose transformed
// spectrum matches the target cl.
//
// The forward map is evaluated on a zero-padded spectrum (default total size
// 3*len(cl), see [WithPadding]). Starting from the closed-form inverse (or
// [WithInitial]), a Newton step in correlation space is taken each
// iteration, halved until the squared residual norm no longer increases.
// Convergence requires |residual[l]| <= tol*|cl[l]| for every multipole.
//
// On ErrNotConverged or ErrStalled the returned spectrum is the best
// solution found, and the Result describes how far the iteration got.
func Solve(cl []float64, t Transformation, opts ...Option) ([]float64, Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := len(cl)
	if m == 0 {
		return nil, Result{}, cltransform.ErrEmptySpectrum
	}

	n := cfg.size
	if n == 0 {
		n = 3 * m
	}

	if n < m {
		return nil, Result{}, ErrBadPadding
	}

	small, err := cltransform.NewPlan(m)
	if err != nil {
		return nil, Result{}, err
	}

	big, err := cltransform.NewPlan(n)
	if err != nil {
		return nil, Result{}, err
	}

	var gl []float64
	if cfg.initial != nil {
		if len(cfg.initial) != m {
			return nil, Result{}, ErrBadInitial
		}

		gl = append([]float64(nil), cfg.initial...)
	} else {
		corr, err := small.CltoCorr(cl)
		if err != nil {
			return nil, Result{}, err
		}

		inv := make([]float64, m)
		if err := t.Inverse(inv, corr); err != nil {
			return nil, Result{}, err
		}

		gl, err = small.CorrToCl(inv)
		if err != nil {
			return nil, Result{}, err
		}
	}

	if cfg.hasMonopole {
		gl[0] = cfg.monopole
	}

	s := solver{
		cl:  cl,
		t:   t,
		cfg: cfg,
		big: big,
		pad: make([]float64, n),
	}

	return s.run(gl)
}

// solver carries the per-call state of the Newton iteration.
type solver struct {
	cl  []float64
	t   Transformation
	cfg config
	big *cltransform.Plan
	pad []float64
}

func (s *solver) run(gl []float64) ([]float64, Result, error) {
	gt, fl, f2, err := s.residual(gl)
	if err != nil {
		return nil, Result{}, err
	}

	iter := 0
	for s.exceedsTolerance(fl) {
		iter++
		if iter > s.cfg.maxIter {
			iter--
			return gl, Result{Iterations: iter, Tol: s.achievedTolerance(fl)}, ErrNotConverged
		}

		xl, err := s.newtonStep(gt, fl)
		if err != nil {
			return gl, Result{Iterations: iter, Tol: s.achievedTolerance(fl)}, err
		}

		glNext, gtNext, flNext, f2Next, ok, err := s.lineSearch(gl, xl, f2)
		if err != nil {
			return gl, Result{Iterations: iter, Tol: s.achievedTolerance(fl)}, err
		}

		if !ok {
			return gl, Result{Iterations: iter, Tol: s.achievedTolerance(fl)}, ErrStalled
		}

		gl, gt, fl, f2 = glNext, gtNext, flNext, f2Next
	}

	return gl, Result{Iterations: iter, Tol: s.achievedTolerance(fl), Converged: true}, nil
}

// residual evaluates the padded forward transform of gl and returns the
// Gaussian correlation values gt, the residual fl against the target, and
// the squared residual norm.
func (s *solver) residual(gl []float64) (gt, fl []float64, f2 float64, err error) {
	copy(s.pad, gl)
	for i := len(gl); i < len(s.pad); i++ {
		s.pad[i] = 0
	}

	gt, err = s.big.CltoCorr(s.pad)
	if err != nil {
		return nil, nil, 0, err
	}

	tx := make([]float64, len(gt))
	s.t.Transform(tx, gt)

	full, err := s.big.CorrToCl(tx)
	if err != nil {
		return nil, nil, 0, err
	}

	fl = full[:len(s.cl)]
	for l := range fl {
		fl[l] -= s.cl[l]
	}

	if s.cfg.hasMonopole {
		fl[0] = 0
	}

	return gt, fl, vecmath.DotProduct(fl, fl), nil
}

// newtonStep computes xl = -CorrToCl(CltoCorr(pad(fl)) / f'(gt))[:m].
func (s *solver) newtonStep(gt, fl []float64) ([]float64, error) {
	copy(s.pad, fl)
	for i := len(fl); i < len(s.pad); i++ {
		s.pad[i] = 0
	}

	ft, err := s.big.CltoCorr(s.pad)
	if err != nil {
		return nil, err
	}

	dt := make([]float64, len(gt))
	s.t.Derivative(dt, gt)

	for j := range ft {
		ft[j] /= dt[j]
	}

	full, err := s.big.CorrToCl(ft)
	if err != nil {
		return nil, err
	}

	xl := full[:len(s.cl)]
	vecmath.ScaleBlockInPlace(xl, -1)

	if s.cfg.hasMonopole {
		xl[0] = 0
	}

	return xl, nil
}

// lineSearch halves the step xl until the squared residual norm no longer
// increases. ok is false when the step underflows to zero first.
func (s *solver) lineSearch(gl, xl []float64, f2 float64) (glNext, gtNext, flNext []float64, f2Next float64, ok bool, err error) {
	for vecmath.DotProduct(xl, xl) != 0 {
		glNext = make([]float64, len(gl))
		vecmath.AddBlock(glNext, gl, xl)

		gtNext, flNext, f2Next, err = s.residual(glNext)
		if err != nil {
			return nil, nil, nil, 0, false, err
		}

		if f2Next <= f2 {
			return glNext, gtNext, flNext, f2Next, true, nil
		}

		vecmath.ScaleBlockInPlace(xl, 0.5)
	}

	return nil, nil, nil, 0, false, nil
}

func (s *solver) exceedsTolerance(fl []float64) bool {
	for l, f := range fl {
		if math.Abs(f) > s.cfg.tol*math.Abs(s.cl[l]) {
			return true
		}
	}

	return false
}

func (s *solver) achievedTolerance(fl []float64) float64 {
	tol := 0.0
	for l, f := range fl {
		if f == 0 {
			continue
		}

		if r := math.Abs(f / s.cl[l]); r > tol {
			tol = r
		}
	}

	return tol
}
