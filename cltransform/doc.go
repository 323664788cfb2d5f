// Package cltransform converts between angular power spectra and angular
// correlation functions of random fields on the sphere.
//
// An angular power spectrum is an ordered sequence of coefficients C_l,
// indexed by multipole degree l = 0..n-1. The corresponding angular
// correlation function is
//
//	xi(x) = sum_l (2l+1)/(4*pi) * C_l * P_l(x)
//
// where P_l are the Legendre polynomials and x = cos(theta) is the cosine of
// the angular separation. The package evaluates xi at the nodes of an n-point
// Gauss-Legendre quadrature rule, so that the reverse map
//
//	C_l = 2*pi * sum_j w_j * P_l(x_j) * xi(x_j)
//
// is the exact inverse: the quadrature integrates products of Legendre
// polynomials up to degree 2n-1 without error, which makes CltoCorr and
// CorrToCl mutually inverse square transforms.
//
// # Usage
//
// Create a [Plan] once per transform size and reuse it:
//
//	plan, _ := cltransform.NewPlan(len(cl))
//	corr, _ := plan.CltoCorr(cl)
//	// ... operate on correlation values ...
//	cl2, _ := plan.CorrToCl(corr)
//
// For one-off conversions the package-level [CltoCorr] and [CorrToCl] build a
// plan internally.
package cltransform
