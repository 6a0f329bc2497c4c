package kernel

import (
	"math"

	errs "github.com/mailstat/smgp/internal/errors"
)

// Initial frequency guesses are clamped to this range once, at
// construction of the parameter vector. The clamp is an initialization
// heuristic only: during optimization frequencies are unconstrained,
// while lengthscales stay positive through the log reparameterization.
// The asymmetry is deliberate.
const (
	initFreqMin = 0
	initFreqMax = 5
)

// SpectralMixture is a sum of Q locally-periodic terms, each the
// product of a squared-exponential envelope and a cosine, with the
// fixed weight 1/Q, plus a unit-variance linear term and a
// unit-variance bias term.
//
// The packed raw parameter vector is
//
//	f1 .. fQ   frequencies (unconstrained)
//	u1 .. uQ   log lengthscales, with l_i = exp(u_i)
type SpectralMixture struct {
	Q int
}

// NewSpectralMixture returns the composite kernel with q terms.
func NewSpectralMixture(q int) (*SpectralMixture, error) {
	if q <= 0 {
		return nil, errs.Configuration("number of kernel terms must be positive, got %d", q)
	}
	return &SpectralMixture{Q: q}, nil
}

func (k *SpectralMixture) NTheta() int { return 2 * k.Q }

// InitialTheta packs the initial raw vector from a frequency and a
// lengthscale guess, shared by all terms. The frequency is clamped to
// [0, 5]; the lengthscale is stored through its log-domain
// reparameterization.
func (k *SpectralMixture) InitialTheta(freq, lengthscale float64) []float64 {
	f := math.Min(math.Max(freq, initFreqMin), initFreqMax)
	u := NewPositive(lengthscale).Raw()
	theta := make([]float64, k.NTheta())
	for i := 0; i != k.Q; i++ {
		theta[i] = f
		theta[k.Q+i] = u
	}
	return theta
}

func (k *SpectralMixture) Cov(theta []float64, xa, xb float64) float64 {
	w := 1 / float64(k.Q)
	sum := 0.
	for i := 0; i != k.Q; i++ {
		l := PositiveFromRaw(theta[k.Q+i]).Value()
		sum += w * RBF.Cov(l, xa, xb) * Cosine.Cov(theta[i], xa, xb)
	}
	return sum + Linear.Cov(xa, xb) + Bias.Cov(xa, xb)
}

func (k *SpectralMixture) Grad(grad, theta []float64, xa, xb float64) {
	d := xa - xb
	w := 1 / float64(k.Q)
	for i := 0; i != k.Q; i++ {
		f := theta[i]
		l := PositiveFromRaw(theta[k.Q+i]).Value()
		envelope := w * RBF.Cov(l, xa, xb)
		phase := 2 * math.Pi * f * d
		// The cosine oscillates, the envelope does not depend on f.
		grad[i] = -envelope * math.Sin(phase) * 2 * math.Pi * d
		// dk/du = dk/dl * dl/du with l = exp(u).
		grad[k.Q+i] = envelope * math.Cos(phase) * d * d / (l * l)
	}
}
