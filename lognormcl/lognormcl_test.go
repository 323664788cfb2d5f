package lognormcl

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sphcl/gaussiancl"
)

func TestRoundTrip(t *testing.T) {
	cg := []float64{0, 0.1, 0.05}

	cln, err := N2Ln(cg, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(cln) != len(cg) {
		t.Fatalf("output length %d, want %d", len(cln), len(cg))
	}

	back, err := Ln2N(cln, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	for l := range cg {
		if math.Abs(back[l]-cg[l]) > 1e-8 {
			t.Errorf("round trip at l=%d: got %.12g, want %.12g", l, back[l], cg[l])
		}
	}
}

func TestZeroSpectrum(t *testing.T) {
	zero := make([]float64, 6)

	fwd, err := N2Ln(zero, 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	for l, v := range fwd {
		if math.Abs(v) > 1e-14 {
			t.Errorf("N2Ln zero at l=%d: %g", l, v)
		}
	}

	back, err := Ln2N(zero, 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	for l, v := range back {
		if math.Abs(v) > 1e-14 {
			t.Errorf("Ln2N zero at l=%d: %g", l, v)
		}
	}
}

func TestMonopoleOnlyClosedForm(t *testing.T) {
	// For a monopole-only spectrum the correlation is the constant
	// xi = C_0/(4*pi), so the converted spectrum is monopole-only with
	// C_0' = 4*pi * (e^xi - 1) * alpha * alpha2.
	c0 := 0.7
	alpha := 1.5
	cl := []float64{c0, 0, 0, 0}

	out, err := N2Ln(cl, alpha, 0)
	if err != nil {
		t.Fatal(err)
	}

	xi := c0 / (4 * math.Pi)
	want := 4 * math.Pi * math.Expm1(xi) * alpha * alpha

	if math.Abs(out[0]-want) > 1e-12 {
		t.Errorf("out[0] = %.17g, want %.17g", out[0], want)
	}

	for l := 1; l < len(out); l++ {
		if math.Abs(out[l]) > 1e-12 {
			t.Errorf("out[%d] = %g, want 0", l, out[l])
		}
	}
}

func TestMonotonicInSameMultipole(t *testing.T) {
	base := []float64{0.2, 0.1, 0.05, 0.02}
	bumped := append([]float64(nil), base...)
	bumped[1] += 0.01

	outBase, err := N2Ln(base, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	outBumped, err := N2Ln(bumped, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	if outBumped[1] <= outBase[1] {
		t.Errorf("Cln[1] did not increase: %.12g <= %.12g", outBumped[1], outBase[1])
	}
}

func TestDomainError(t *testing.T) {
	// xi = C_0/(4*pi) = -2 makes 1 + xi/(alpha*alpha2) negative.
	cl := []float64{-8 * math.Pi, 0, 0}

	out, err := Ln2N(cl, 1, 0)
	if !errors.Is(err, gaussiancl.ErrDomain) {
		t.Fatalf("Ln2N out of domain = %v, want ErrDomain", err)
	}

	if out != nil {
		t.Error("output returned alongside domain error")
	}
}

func TestAlpha2Default(t *testing.T) {
	cl := []float64{0.3, 0.1, 0.05}

	a, err := N2Ln(cl, 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	b, err := N2Ln(cl, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	for l := range a {
		if a[l] != b[l] {
			t.Errorf("alpha2 default differs at l=%d: %g != %g", l, a[l], b[l])
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	cl := []float64{0.2, 0.1, 0.05}
	orig := append([]float64(nil), cl...)

	if _, err := N2Ln(cl, 1.5, 0); err != nil {
		t.Fatal(err)
	}

	for l := range cl {
		if cl[l] != orig[l] {
			t.Fatalf("input mutated at l=%d", l)
		}
	}
}
