// Package gaussiancl solves for the angular power spectrum of a Gaussian
// random field that yields a given target spectrum under a pointwise
// transformation of the field, such as lognormal.
//
// A transformed field Y = f(X) has an angular correlation function that is a
// pointwise function of the Gaussian field's correlation. The supported
// transformations implement [Transformation]; for the lognormal convention
//
//	Y = e^X - lambda,  alpha = E[Y] + lambda
//
// the correlation transform is xi_Y = (e^{xi_X} - 1) * alpha1 * alpha2.
//
// [Lim] applies a transformation to a band-limited spectrum directly.
// [Solve] inverts the forward map numerically: starting from the closed-form
// inverse as initial guess, it runs a damped Newton iteration in correlation
// space, with zero-padding to reduce aliasing from the nonlinearity, until
// every multipole of the residual is below a relative tolerance. The solver
// reports failure to converge and stalled line searches as distinct errors
// while still returning the best solution found.
package gaussiancl
