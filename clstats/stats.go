// Package clstats computes descriptive statistics of angular power spectra.
package clstats

import (
	"math"
)

// Stats holds descriptive statistics of an angular power spectrum.
type Stats struct {
	Multipoles int // number of coefficients (lmax + 1)
	Lmax       int
	Variance   float64 // zero-lag correlation xi(0) = sum (2l+1) C_l / 4pi
	Total      float64 // sum of C_l
	Average    float64
	RMS        float64
	Max        float64
	MaxL       int
	Min        float64
	MinL       int
}

// Calculate computes all statistics of the spectrum cl. The multipole of
// index i is i itself; order is significant.
func Calculate(cl []float64) Stats {
	n := len(cl)
	if n == 0 {
		return Stats{Lmax: -1}
	}

	var s Stats
	s.Multipoles = n
	s.Lmax = n - 1

	s.Min = cl[0]
	s.Max = cl[0]

	sumSq := 0.0
	for l, v := range cl {
		s.Total += v
		sumSq += v * v
		s.Variance += (2*float64(l) + 1) * v

		if v > s.Max {
			s.Max = v
			s.MaxL = l
		}

		if v < s.Min {
			s.Min = v
			s.MinL = l
		}
	}

	s.Variance /= 4 * math.Pi
	s.Average = s.Total / float64(n)
	s.RMS = math.Sqrt(sumSq / float64(n))

	return s
}

// Variance returns the zero-lag correlation xi(0) = sum (2l+1) C_l / 4pi,
// the field variance implied by the spectrum. This is the quantity that
// normalizes the lognormal shift parameter.
func Variance(cl []float64) float64 {
	sum := 0.0
	for l, v := range cl {
		sum += (2*float64(l) + 1) * v
	}

	return sum / (4 * math.Pi)
}
