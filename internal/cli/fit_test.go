package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The selfcheck run exercises the whole pipeline on the embedded log:
// 17 months, 3 dropped, 11 trained on, 3 scored.
func TestRunFitSelfcheck(t *testing.T) {
	if testing.Short() {
		t.Skip("fits a model")
	}
	out := filepath.Join(t.TempDir(), "forecast.csv")
	fitFlags.Input = "-"
	fitFlags.Out = out
	fitFlags.Horizon = 6
	fitFlags.Selfcheck = true
	defer func() {
		fitFlags.Out = "-"
		fitFlags.Selfcheck = false
	}()

	require.NoError(t, runFit(fitCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, "index,actual,mean,std,lo95,hi95", lines[0])
	// Months 0..13 observed or held out, plus 6 future months.
	assert.Len(t, lines[1:], 20)
	// Future months carry no actual value.
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "19,,"))
}

func TestSelfCheckLogParses(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(selfCheckLog), "\n")
	require.Equal(t, "date,user,to,size", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, 4, strings.Count(line, ",")+1,
			"row %q has wrong arity", line)
	}
}
