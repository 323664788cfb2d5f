package gaussiancl

const (
	defaultTolerance     = 1e-5
	defaultMaxIterations = 20
)

// Option configures [Lim] and [Solve].
type Option func(*config)

type config struct {
	inverse     bool
	derivative  bool
	size        int
	tol         float64
	maxIter     int
	initial     []float64
	monopole    float64
	hasMonopole bool
}

func defaultConfig() config {
	return config{
		tol:     defaultTolerance,
		maxIter: defaultMaxIterations,
	}
}

// WithInverse applies the inverse transformation in [Lim].
func WithInverse() Option {
	return func(c *config) { c.inverse = true }
}

// WithDerivative applies the derivative of the transformation in [Lim].
// Combined with [WithInverse], the derivative of the inverse is applied.
func WithDerivative() Option {
	return func(c *config) { c.derivative = true }
}

// WithPadding sets the total transform size n >= len(cl) used to reduce
// aliasing from the nonlinearity. The default for [Solve] is 3*len(cl);
// [Lim] uses no padding by default.
func WithPadding(n int) Option {
	return func(c *config) { c.size = n }
}

// WithTolerance sets the relative convergence tolerance of [Solve]. The
// solver has converged when |residual[l]| <= tol*|cl[l]| for every multipole.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tol = tol }
}

// WithMaxIterations caps the number of Newton iterations of [Solve].
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIter = n }
}

// WithInitial sets the initial guess for the Gaussian spectrum instead of
// the closed-form inverse. The slice is copied.
func WithInitial(gl []float64) Option {
	return func(c *config) { c.initial = gl }
}

// WithMonopole pins the monopole of the solution to v; the monopole residual
// is excluded from the convergence criterion.
func WithMonopole(v float64) Option {
	return func(c *config) {
		c.monopole = v
		c.hasMonopole = true
	}
}
