package bench

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameshift/sieve"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRunnerMatchesReference(t *testing.T) {
	cases := []Case{
		{Start: 1, Stop: 1000, Description: "small"},
		{Start: 1000, Stop: 2000, Description: "mid"},
		{Start: 10000, Stop: 11000, Description: "offset"},
	}

	runner := NewRunner(2, 2, sieve.DefaultParams(), quietLogger())
	results, err := runner.Run(context.Background(), cases)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, cases[i].Description, res.Description)
		assert.True(t, res.Match, "case %q", res.Description)
		assert.Positive(t, res.Primes)
		assert.GreaterOrEqual(t, res.Frame.Max, res.Frame.Min)
	}

	// π(1000) = 168.
	assert.Equal(t, uint64(168), results[0].Primes)
}

func TestRunnerPropagatesInitFailure(t *testing.T) {
	runner := NewRunner(1, 1, sieve.DefaultParams(), quietLogger())
	_, err := runner.Run(context.Background(), []Case{{Start: 10, Stop: 5}})
	require.ErrorIs(t, err, sieve.ErrInvalidRange)
}

func TestRunnerHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(1, 1, sieve.DefaultParams(), quietLogger())
	_, err := runner.Run(ctx, []Case{{Start: 1, Stop: 100}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestComputeStats(t *testing.T) {
	s := computeStats([]float64{1, 2, 3, 4})

	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, 1.118, s.Stddev, 1e-3)

	assert.Equal(t, Stats{}, computeStats(nil))
}

func TestBuildReportSummary(t *testing.T) {
	results := []Result{
		{Match: true, Ratio: 2.0},
		{Match: true, Ratio: 0.5},
		{Match: false, Ratio: 3.5},
	}

	rep := BuildReport(5, sieve.DefaultParams(), results)

	assert.Equal(t, 3, rep.Summary.Cases)
	assert.Equal(t, 2, rep.Summary.Matches)
	assert.Equal(t, 2, rep.Summary.ReferenceFaster)
	assert.InDelta(t, 2.0, rep.Summary.MeanRatio, 1e-12)
	assert.Equal(t, 5, rep.Runs)
}

func TestWriteReports(t *testing.T) {
	dir := t.TempDir()

	runner := NewRunner(1, 1, sieve.DefaultParams(), quietLogger())
	results, err := runner.Run(context.Background(), []Case{
		{Start: 1, Stop: 100, Description: "basic"},
	})
	require.NoError(t, err)

	csvPath := filepath.Join(dir, "results.csv")
	require.NoError(t, WriteCSV(csvPath, results))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "description,start,stop")
	assert.Contains(t, string(data), "basic,1,100,25,25,true")

	jsonPath := filepath.Join(dir, "report.json")
	rep := BuildReport(runner.Runs, runner.Params, results)
	require.NoError(t, WriteJSON(jsonPath, rep))

	var decoded Report
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Summary.Cases)
	assert.Equal(t, 1, decoded.Summary.Matches)
}
