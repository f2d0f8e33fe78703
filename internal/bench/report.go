package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"frameshift/sieve"
)

// Summary aggregates a benchmark run for the JSON report.
type Summary struct {
	Cases           int     `json:"cases"`
	Matches         int     `json:"matches"`
	ReferenceFaster int     `json:"reference_faster"`
	MeanRatio       float64 `json:"mean_ratio"`
}

// Report is the full benchmark outcome written to disk.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Runs        int          `json:"runs"`
	Params      sieve.Params `json:"params"`
	Results     []Result     `json:"results"`
	Summary     Summary      `json:"summary"`
}

// BuildReport assembles a Report from runner output.
func BuildReport(runs int, params sieve.Params, results []Result) Report {
	rep := Report{
		GeneratedAt: time.Now(),
		Runs:        runs,
		Params:      params,
		Results:     results,
	}

	totalRatio := 0.0
	for _, res := range results {
		rep.Summary.Cases++
		if res.Match {
			rep.Summary.Matches++
		}
		if res.Ratio > 1 {
			rep.Summary.ReferenceFaster++
		}
		totalRatio += res.Ratio
	}
	if rep.Summary.Cases > 0 {
		rep.Summary.MeanRatio = totalRatio / float64(rep.Summary.Cases)
	}

	return rep
}

// WriteCSV writes one row per result, with a header, to path.
func WriteCSV(path string, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	header := []string{
		"description", "start", "stop", "primes", "reference", "match",
		"frame_mean_s", "frame_stddev_s", "frame_min_s", "frame_max_s",
		"ref_mean_s", "ref_stddev_s", "ratio",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, res := range results {
		record := []string{
			res.Description,
			strconv.FormatUint(res.Start, 10),
			strconv.FormatUint(res.Stop, 10),
			strconv.FormatUint(res.Primes, 10),
			strconv.FormatUint(res.Reference, 10),
			strconv.FormatBool(res.Match),
			strconv.FormatFloat(res.Frame.Mean, 'f', 6, 64),
			strconv.FormatFloat(res.Frame.Stddev, 'f', 6, 64),
			strconv.FormatFloat(res.Frame.Min, 'f', 6, 64),
			strconv.FormatFloat(res.Frame.Max, 'f', 6, 64),
			strconv.FormatFloat(res.Ref.Mean, 'f', 6, 64),
			strconv.FormatFloat(res.Ref.Stddev, 'f', 6, 64),
			strconv.FormatFloat(res.Ratio, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write result record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush results file: %w", err)
	}
	return nil
}

// WriteJSON writes the full report, indented, to path.
func WriteJSON(path string, rep Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
