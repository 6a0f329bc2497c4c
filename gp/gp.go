// Package gp implements zero-mean Gaussian process regression over
// scalar inputs: covariance-matrix assembly, Cholesky-based log
// marginal likelihood with its analytic gradient, and posterior
// prediction. A covariance matrix that fails to factorize is reported
// as a numerical error and never papered over.
package gp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	errs "github.com/mailstat/smgp/internal/errors"
	"github.com/mailstat/smgp/kernel"
)

// GP is a Gaussian process regression model conditioned on the
// training observations X, Y. The raw hyperparameter vector passed to
// its methods is the similarity kernel's parameters followed by the
// noise kernel's.
type GP struct {
	Simil kernel.Simil
	Noise kernel.Noise

	X []float64
	Y []float64
}

// NTheta is the total number of raw hyperparameters.
func (g *GP) NTheta() int {
	return g.Simil.NTheta() + g.Noise.NTheta()
}

// cov assembles the training covariance matrix: the similarity kernel
// over all pairs of training inputs plus the noise variance on the
// diagonal.
func (g *GP) cov(theta []float64) *mat.SymDense {
	n := len(g.X)
	simil := theta[:g.Simil.NTheta()]
	noise := g.Noise.Variance(theta[g.Simil.NTheta():])
	k := mat.NewSymDense(n, nil)
	for i := 0; i != n; i++ {
		for j := i; j != n; j++ {
			v := g.Simil.Cov(simil, g.X[i], g.X[j])
			if i == j {
				v += noise
			}
			k.SetSym(i, j, v)
		}
	}
	return k
}

func (g *GP) factorize(theta []float64) (*mat.Cholesky, error) {
	var ch mat.Cholesky
	if !ch.Factorize(g.cov(theta)) {
		return nil, errs.Numerical(
			"covariance matrix is not positive definite")
	}
	return &ch, nil
}

// LML returns the log marginal likelihood of the training outputs
// under the hyperparameters:
//
//	log p(y|X,θ) = -½ yᵀK⁻¹y - ½ log|K| - n/2 log 2π
func (g *GP) LML(theta []float64) (float64, error) {
	ch, err := g.factorize(theta)
	if err != nil {
		return math.Inf(-1), err
	}
	y := mat.NewVecDense(len(g.Y), g.Y)
	var alpha mat.VecDense
	if err := ch.SolveVecTo(&alpha, y); err != nil {
		return math.Inf(-1), errs.Numerical("covariance solve: %v", err)
	}
	return g.lml(ch, y, &alpha), nil
}

func (g *GP) lml(ch *mat.Cholesky, y, alpha *mat.VecDense) float64 {
	n := float64(len(g.Y))
	return -0.5*mat.Dot(y, alpha) - 0.5*ch.LogDet() -
		0.5*n*math.Log(2*math.Pi)
}

// LMLGrad returns the log marginal likelihood together with its
// gradient with respect to every raw hyperparameter,
//
//	∂/∂θ = ½ (αᵀ (∂K/∂θ) α - tr(K⁻¹ ∂K/∂θ)),  α = K⁻¹y.
func (g *GP) LMLGrad(theta []float64) (float64, []float64, error) {
	n := len(g.X)
	ns := g.Simil.NTheta()

	ch, err := g.factorize(theta)
	if err != nil {
		return math.Inf(-1), nil, err
	}
	y := mat.NewVecDense(len(g.Y), g.Y)
	var alpha mat.VecDense
	if err := ch.SolveVecTo(&alpha, y); err != nil {
		return math.Inf(-1), nil, errs.Numerical("covariance solve: %v", err)
	}
	ll := g.lml(ch, y, &alpha)

	var kinv mat.SymDense
	if err := ch.InverseTo(&kinv); err != nil {
		return math.Inf(-1), nil, errs.Numerical("covariance inverse: %v", err)
	}

	grad := make([]float64, g.NTheta())
	dk := make([]float64, ns)
	// αα' - K⁻¹ is symmetric; walk the upper triangle and double the
	// off-diagonal contributions.
	for i := 0; i != n; i++ {
		for j := i; j != n; j++ {
			g.Simil.Grad(dk, theta[:ns], g.X[i], g.X[j])
			c := alpha.AtVec(i)*alpha.AtVec(j) - kinv.At(i, j)
			if i != j {
				c *= 2
			}
			for t := 0; t != ns; t++ {
				grad[t] += 0.5 * c * dk[t]
			}
		}
	}
	// The noise enters only on the diagonal.
	dv := g.Noise.VarianceGrad(theta[ns:])
	for i := 0; i != n; i++ {
		c := alpha.AtVec(i)*alpha.AtVec(i) - kinv.At(i, i)
		grad[ns] += 0.5 * c * dv
	}
	return ll, grad, nil
}

// Produce returns the posterior predictive mean and standard deviation
// at the query inputs z, which may be training, held-out, or future
// points:
//
//	mean = k*ᵀK⁻¹y,  var = k** - k*ᵀK⁻¹k*
//
// The variance is that of the latent function; the noise variance
// participates only through K. Widening of the band away from the
// training support is emergent from the kernel, not coded separately.
func (g *GP) Produce(theta, z []float64) (mu, sigma []float64, err error) {
	n := len(g.X)
	ns := g.Simil.NTheta()
	simil := theta[:ns]

	ch, err := g.factorize(theta)
	if err != nil {
		return nil, nil, err
	}
	y := mat.NewVecDense(len(g.Y), g.Y)
	var alpha mat.VecDense
	if err := ch.SolveVecTo(&alpha, y); err != nil {
		return nil, nil, errs.Numerical("covariance solve: %v", err)
	}

	mu = make([]float64, len(z))
	sigma = make([]float64, len(z))
	ks := mat.NewVecDense(n, nil)
	var v mat.VecDense
	for q, x := range z {
		for i := 0; i != n; i++ {
			ks.SetVec(i, g.Simil.Cov(simil, x, g.X[i]))
		}
		mu[q] = mat.Dot(ks, &alpha)
		if err := ch.SolveVecTo(&v, ks); err != nil {
			return nil, nil, errs.Numerical("covariance solve: %v", err)
		}
		vari := g.Simil.Cov(simil, x, x) - mat.Dot(ks, &v)
		if vari < 0 {
			// roundoff near the training points
			vari = 0
		}
		sigma[q] = math.Sqrt(vari)
	}
	return mu, sigma, nil
}
