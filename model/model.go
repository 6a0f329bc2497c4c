// Package model binds the Gaussian process to a raw hyperparameter
// vector and fits it by maximizing the log marginal likelihood with a
// quasi-Newton optimizer.
package model

import (
	"math"

	"bitbucket.org/dtolpin/infergo/infer"
	infergo "bitbucket.org/dtolpin/infergo/model"
	"gonum.org/v1/gonum/optimize"

	"github.com/mailstat/smgp/gp"
	errs "github.com/mailstat/smgp/internal/errors"
	"github.com/mailstat/smgp/priors"
)

// State is the lifecycle of a model within one analysis run.
type State int

const (
	Unfit State = iota
	Fitting
	Fit
)

func (s State) String() string {
	switch s {
	case Unfit:
		return "unfit"
	case Fitting:
		return "fitting"
	case Fit:
		return "fit"
	}
	return "unknown"
}

// Model is the regression model over the raw hyperparameter vector:
// similarity kernel parameters followed by the noise parameter.
// Priors, when non-nil, are added to the objective.
type Model struct {
	GP     *gp.GP
	Priors priors.Priors

	state   State
	theta   []float64
	grad    []float64
	lastErr error
}

// Observe returns the log marginal likelihood (plus priors, if any) at
// the raw hyperparameters x and caches the analytic gradient. On a
// factorization failure the objective is -Inf with a zero gradient, so
// that a line search backs away from the degenerate region; the error
// is remembered and re-checked at the accepted optimum.
func (m *Model) Observe(x []float64) float64 {
	ll, grad, err := m.GP.LMLGrad(x)
	if err != nil {
		m.lastErr = err
		m.grad = make([]float64, len(x))
		return math.Inf(-1)
	}
	m.lastErr = nil
	if m.Priors != nil {
		ll += m.Priors.Observe(x)
		for i, g := range infergo.Gradient(m.Priors) {
			grad[i] += g
		}
	}
	m.grad = grad
	return ll
}

func (m *Model) Gradient() []float64 {
	return m.grad
}

// State returns the model's lifecycle state.
func (m *Model) State() State { return m.state }

// Theta returns the fitted raw hyperparameter vector, nil before a
// successful fit.
func (m *Model) Theta() []float64 { return m.theta }

// Result reports a completed fit.
type Result struct {
	// Log marginal likelihood at the initial and final
	// hyperparameters.
	LML0, LML float64
	// The raw hyperparameter vector at the optimum.
	Theta []float64
	// Major iterations spent by the optimizer.
	Iterations int
}

// Fit optimizes the hyperparameters from the initial raw vector, with
// at most maxIterations major iterations of the default gradient
// method (L-BFGS). Reaching the iteration cap and converging early are
// both success; an optimizer that cannot complete even one iteration,
// or an optimum at which the covariance fails to factorize, is a
// numerical error. The model mutates in place: Unfit through Fitting
// to Fit.
func (m *Model) Fit(init []float64, maxIterations int) (*Result, error) {
	if maxIterations <= 0 {
		return nil, errs.Configuration(
			"iteration cap must be positive, got %d", maxIterations)
	}
	if len(init) != m.GP.NTheta() {
		return nil, errs.Configuration(
			"initial vector has %d parameters, model has %d",
			len(init), m.GP.NTheta())
	}
	if len(m.GP.X) == 0 {
		return nil, errs.Data("no training observations")
	}
	m.state = Fitting
	m.theta = nil

	x := append([]float64(nil), init...)

	// The objective for minimization is the negated log likelihood.
	Func, Grad := infer.FuncGrad(m)
	p := optimize.Problem{Func: Func, Grad: Grad}

	// Initial log likelihood, for reporting.
	lml0 := m.Observe(x)
	infergo.DropGradient(m)
	if m.lastErr != nil {
		m.state = Unfit
		return nil, m.lastErr
	}

	result, err := optimize.Minimize(p, x, &optimize.Settings{
		MajorIterations: maxIterations,
	}, nil)
	// The optimizer does not have to converge officially; the
	// iteration cap and most line-search giving-up conditions still
	// leave a usable optimum. Only a failure on the very first
	// iteration means nothing was achieved.
	if err != nil && (result == nil || result.Stats.MajorIterations <= 1) {
		m.state = Unfit
		return nil, errs.Numerical("optimization failed: %v", err)
	}
	x = result.X

	// Final log likelihood, and the factorization check at the
	// accepted optimum.
	lml := m.Observe(x)
	infergo.DropGradient(m)
	if m.lastErr != nil {
		m.state = Unfit
		return nil, m.lastErr
	}

	m.theta = x
	m.state = Fit
	return &Result{
		LML0:       lml0,
		LML:        lml,
		Theta:      x,
		Iterations: result.Stats.MajorIterations,
	}, nil
}

// Predict returns the posterior predictive mean and standard deviation
// at the query inputs. The model must be Fit.
func (m *Model) Predict(z []float64) (mu, sigma []float64, err error) {
	if m.state != Fit {
		return nil, nil, errs.Configuration(
			"predict on a %v model", m.state)
	}
	return m.GP.Produce(m.theta, z)
}

// NoiseVariance returns the fitted observation-noise variance. The
// model must be Fit.
func (m *Model) NoiseVariance() (float64, error) {
	if m.state != Fit {
		return 0, errs.Configuration("noise variance on a %v model", m.state)
	}
	return m.GP.Noise.Variance(m.theta[m.GP.Simil.NTheta():]), nil
}
