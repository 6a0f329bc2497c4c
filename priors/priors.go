// Package priors provides optional weak priors over the raw
// hyperparameters of the spectral-mixture model. With priors enabled
// the fit is maximum a posteriori; without them (the default) it is
// pure maximum marginal likelihood.
package priors

import (
	. "bitbucket.org/dtolpin/infergo/dist"
	"bitbucket.org/dtolpin/infergo/model"
)

// Priors is an additional log-density over the raw hyperparameter
// vector, with the same layout the model optimizes.
type Priors interface {
	model.Model
	NTheta() int
}

// SM holds weak priors for the spectral-mixture model. The parameter
// vector is Q frequencies, Q log lengthscales, one log noise variance.
type SM struct {
	Q    int
	grad []float64
}

func (p *SM) NTheta() int { return 2*p.Q + 1 }

func (p *SM) Observe(x []float64) float64 {
	p.grad = make([]float64, len(x))
	ll := 0.

	// Frequencies are low, in wide margins.
	for i := 0; i != p.Q; i++ {
		ll += Normal.Logp(1, 2, x[i])
		p.grad[i] = -(x[i] - 1) / 4
	}

	// Length scale is around 1, in wide margins.
	for i := p.Q; i != 2*p.Q; i++ {
		ll += Normal.Logp(0, 2, x[i])
		p.grad[i] = -x[i] / 4
	}

	// Noise variance is mostly less than 1.
	s := 2 * p.Q
	ll += Normal.Logp(-1, 1, x[s])
	p.grad[s] = -(x[s] + 1)

	return ll
}

func (p *SM) Gradient() []float64 {
	return p.grad
}
