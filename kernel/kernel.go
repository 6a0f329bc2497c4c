// Package kernel provides the covariance functions of the forecasting
// model: a spectral-mixture similarity kernel over scalar month indices
// and a uniform observation-noise kernel. Hyperparameters are packed
// into a flat raw vector the optimizer sees; positivity is maintained by
// a log-domain reparameterization, not by clamping.
package kernel

import (
	"math"
)

// Positive is a strictly positive hyperparameter. It carries both the
// raw (unconstrained, optimizer-visible) and the transformed (positive,
// kernel-visible) representation, with value = exp(raw).
type Positive struct {
	raw float64
}

// NewPositive makes a Positive from its transformed value.
func NewPositive(value float64) Positive {
	return Positive{raw: math.Log(value)}
}

// PositiveFromRaw makes a Positive from its raw representation.
func PositiveFromRaw(raw float64) Positive {
	return Positive{raw: raw}
}

// Raw returns the unconstrained representation.
func (p Positive) Raw() float64 { return p.raw }

// Value returns the transformed, strictly positive representation.
func (p Positive) Value() float64 { return math.Exp(p.raw) }

// Simil is a similarity kernel over scalar inputs, parameterized by a
// packed vector of NTheta raw hyperparameters.
type Simil interface {
	NTheta() int
	Cov(theta []float64, xa, xb float64) float64
	// Grad writes into grad the partial derivatives of Cov with
	// respect to every raw hyperparameter. len(grad) >= NTheta().
	Grad(grad, theta []float64, xa, xb float64)
}

// Noise is an observation-noise kernel: a variance added to the
// diagonal of the training covariance matrix.
type Noise interface {
	NTheta() int
	Variance(theta []float64) float64
	// VarianceGrad is the derivative of the variance with respect to
	// its raw parameter.
	VarianceGrad(theta []float64) float64
}

// The unit-variance squared-exponential kernel.
type rbf struct{}

var RBF rbf

func (rbf) Cov(l, xa, xb float64) float64 {
	d := (xa - xb) / l
	return math.Exp(-d * d / 2)
}

// The cosine kernel. f is a frequency: one full oscillation per 1/f
// input units.
type cosine struct{}

var Cosine cosine

func (cosine) Cov(f, xa, xb float64) float64 {
	return math.Cos(2 * math.Pi * f * (xa - xb))
}

// The dot-product kernel, for the linear trend.
type linear struct{}

var Linear linear

func (linear) Cov(xa, xb float64) float64 { return xa * xb }

// The constant bias kernel.
type bias struct{}

var Bias bias

func (bias) Cov(_, _ float64) float64 { return 1 }

// The uniform observation-noise kernel. The single raw parameter is the
// log of the noise variance.
type uniformNoise struct{}

var UniformNoise uniformNoise

func (uniformNoise) NTheta() int { return 1 }

func (uniformNoise) Variance(theta []float64) float64 {
	return math.Exp(theta[0])
}

func (uniformNoise) VarianceGrad(theta []float64) float64 {
	// d exp(raw) / d raw
	return math.Exp(theta[0])
}
