package kernel

import (
	"math"
	"testing"

	errs "github.com/mailstat/smgp/internal/errors"
)

const (
	dx  = 1e-6
	eps = 1e-5
)

func TestPositive(t *testing.T) {
	for _, v := range []float64{0.01, 0.5, 1, 3, 100} {
		p := NewPositive(v)
		if math.Abs(p.Value()-v) > eps {
			t.Errorf("roundtrip of %g: got %g", v, p.Value())
		}
		if PositiveFromRaw(p.Raw()).Value() != p.Value() {
			t.Errorf("raw roundtrip of %g differs", v)
		}
	}
	// Positivity holds for any raw value.
	for _, raw := range []float64{-50, -1, 0, 1, 50} {
		if v := PositiveFromRaw(raw).Value(); !(v > 0) {
			t.Errorf("value at raw=%g is %g, want positive", raw, v)
		}
	}
}

func TestNewSpectralMixture(t *testing.T) {
	for _, q := range []int{0, -1, -10} {
		if _, err := NewSpectralMixture(q); !errs.IsConfiguration(err) {
			t.Errorf("q=%d: got %v, want configuration error", q, err)
		}
	}
	k, err := NewSpectralMixture(10)
	if err != nil {
		t.Fatalf("q=10: %v", err)
	}
	if k.NTheta() != 20 {
		t.Errorf("NTheta: got %d, want 20", k.NTheta())
	}
}

func TestInitialThetaClamp(t *testing.T) {
	k, _ := NewSpectralMixture(3)
	for _, c := range []struct {
		freq, want float64
	}{
		{1, 1},
		{-2, 0},
		{7, 5},
		{4.5, 4.5},
	} {
		theta := k.InitialTheta(c.freq, 1)
		for i := 0; i != k.Q; i++ {
			if theta[i] != c.want {
				t.Errorf("freq %g: theta[%d] = %g, want %g",
					c.freq, i, theta[i], c.want)
			}
		}
		// lengthscale 1 is raw 0 under the log reparameterization
		for i := k.Q; i != 2*k.Q; i++ {
			if theta[i] != 0 {
				t.Errorf("freq %g: theta[%d] = %g, want 0",
					c.freq, i, theta[i])
			}
		}
	}
}

func TestCovSymmetry(t *testing.T) {
	k, _ := NewSpectralMixture(4)
	theta := []float64{0.3, 1.1, 2.7, 0.9, -0.5, 0, 0.5, 1}
	for _, p := range [][2]float64{{0, 1}, {2, 5}, {3, 3}, {-1, 4}, {10, 13}} {
		ab := k.Cov(theta, p[0], p[1])
		ba := k.Cov(theta, p[1], p[0])
		if math.Abs(ab-ba) > eps {
			t.Errorf("Cov(%g,%g)=%g != Cov(%g,%g)=%g",
				p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestCovZeroLag(t *testing.T) {
	// At zero lag every term is a variance, hence non-negative,
	// for any q and any parameter values.
	for _, q := range []int{1, 3, 10} {
		k, _ := NewSpectralMixture(q)
		theta := make([]float64, k.NTheta())
		for i := range theta {
			theta[i] = math.Sin(float64(3*i+q)) * 3
		}
		for _, x := range []float64{0, 1, 7, 16} {
			if v := k.Cov(theta, x, x); v < 0 {
				t.Errorf("q=%d: Cov(%g,%g) = %g, want non-negative",
					q, x, x, v)
			}
		}
	}
}

func TestGrad(t *testing.T) {
	for i, c := range []struct {
		q      int
		theta  []float64
		xa, xb float64
	}{
		{1, []float64{1, 0}, 0, 1},
		{2, []float64{1, 1, 0, 0}, 0, 3},
		{2, []float64{0.5, 2, -0.3, 0.7}, 2, 5},
		{3, []float64{1, 1, 1, 0, 0, 0}, 4, 4},
	} {
		k, _ := NewSpectralMixture(c.q)
		grad := make([]float64, k.NTheta())
		k.Grad(grad, c.theta, c.xa, c.xb)
		for j := range c.theta {
			theta0 := c.theta[j]
			c.theta[j] = theta0 + dx
			up := k.Cov(c.theta, c.xa, c.xb)
			c.theta[j] = theta0 - dx
			down := k.Cov(c.theta, c.xa, c.xb)
			c.theta[j] = theta0
			dkdx := (up - down) / (2 * dx)
			if math.Abs(grad[j]-dkdx) > eps {
				t.Errorf("%d: dk/dtheta%d mismatch: got %.8f, want %.8f",
					i, j, grad[j], dkdx)
			}
		}
	}
}

func TestUniformNoise(t *testing.T) {
	theta := []float64{0}
	if v := UniformNoise.Variance(theta); math.Abs(v-1) > eps {
		t.Errorf("variance at raw 0: got %g, want 1", v)
	}
	theta[0] = -2
	up := UniformNoise.Variance([]float64{theta[0] + dx})
	down := UniformNoise.Variance([]float64{theta[0] - dx})
	dvdx := (up - down) / (2 * dx)
	if g := UniformNoise.VarianceGrad(theta); math.Abs(g-dvdx) > eps {
		t.Errorf("variance gradient: got %.8f, want %.8f", g, dvdx)
	}
}
