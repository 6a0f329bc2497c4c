package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		is   func(error) bool
		kind error
	}{
		{"data", Data("bad record %d", 7), IsData, ErrData},
		{"numerical", Numerical("not positive definite"), IsNumerical, ErrNumerical},
		{"configuration", Configuration("q must be positive, got %d", -1), IsConfiguration, ErrConfiguration},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Error(t, c.err)
			assert.True(t, c.is(c.err))
			assert.True(t, errors.Is(c.err, c.kind))
		})
	}
}

func TestKindsAreDistinct(t *testing.T) {
	err := Data("zero rows after filtering")
	assert.False(t, IsNumerical(err))
	assert.False(t, IsConfiguration(err))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("fit: %w", Numerical("cholesky failed"))
	assert.True(t, IsNumerical(err))
	assert.Contains(t, err.Error(), "cholesky failed")
}
