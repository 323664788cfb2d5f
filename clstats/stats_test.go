package clstats

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	cl := []float64{0.4, 0.2, -0.1, 0.8}

	s := Calculate(cl)

	if s.Multipoles != 4 || s.Lmax != 3 {
		t.Errorf("Multipoles/Lmax = %d/%d, want 4/3", s.Multipoles, s.Lmax)
	}

	wantVar := (1*0.4 + 3*0.2 + 5*-0.1 + 7*0.8) / (4 * math.Pi)
	if math.Abs(s.Variance-wantVar) > 1e-15 {
		t.Errorf("Variance = %.17g, want %.17g", s.Variance, wantVar)
	}

	if math.Abs(s.Total-1.3) > 1e-15 {
		t.Errorf("Total = %.17g, want 1.3", s.Total)
	}

	if s.Max != 0.8 || s.MaxL != 3 {
		t.Errorf("Max = %g at l=%d, want 0.8 at l=3", s.Max, s.MaxL)
	}

	if s.Min != -0.1 || s.MinL != 2 {
		t.Errorf("Min = %g at l=%d, want -0.1 at l=2", s.Min, s.MinL)
	}

	wantRMS := math.Sqrt((0.4*0.4 + 0.2*0.2 + 0.1*0.1 + 0.8*0.8) / 4)
	if math.Abs(s.RMS-wantRMS) > 1e-15 {
		t.Errorf("RMS = %.17g, want %.17g", s.RMS, wantRMS)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)

	if s.Multipoles != 0 || s.Lmax != -1 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestVarianceMatchesCalculate(t *testing.T) {
	cl := []float64{1.2, 0.7, 0.35, 0.2, 0.1}

	if v, s := Variance(cl), Calculate(cl); v != s.Variance {
		t.Errorf("Variance = %.17g, Calculate().Variance = %.17g", v, s.Variance)
	}
}

func TestVarianceMonopole(t *testing.T) {
	// xi(0) of a pure monopole is C_0/(4*pi).
	c0 := 2.0

	want := c0 / (4 * math.Pi)
	if v := Variance([]float64{c0}); math.Abs(v-want) > 1e-16 {
		t.Errorf("Variance = %.17g, want %.17g", v, want)
	}
}
