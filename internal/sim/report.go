package sim

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WriteCSV writes results with a header row.
func WriteCSV(w io.Writer, results []Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("sim: writing csv: %w", err)
	}
	return nil
}

// Stats describes one metric across a batch.
type Stats struct {
	Mean   float64
	StdDev float64
	Median float64
	Max    float64
}

// Summary aggregates a batch of results.
type Summary struct {
	Runs     int
	TimedOut int
	Score    Stats
	Seconds  Stats
	Causes   map[string]int
}

// Summarize computes batch statistics. An empty batch gives a zero Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Causes: make(map[string]int)}
	if len(results) == 0 {
		return s
	}

	scores := make([]float64, len(results))
	seconds := make([]float64, len(results))
	for i, r := range results {
		scores[i] = float64(r.Score)
		seconds[i] = r.Seconds
		s.Causes[r.Cause]++
		if r.TimedOut {
			s.TimedOut++
		}
	}
	s.Score = describe(scores)
	s.Seconds = describe(seconds)
	return s
}

func describe(x []float64) Stats {
	sort.Float64s(x)
	st := Stats{
		Mean:   stat.Mean(x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		Max:    floats.Max(x),
	}
	// Sample deviation is undefined for a single value.
	if len(x) > 1 {
		st.StdDev = stat.StdDev(x, nil)
	}
	return st
}

// Write prints the summary as a small text table.
func (s Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Runs: %d (timed out: %d)\n\n", s.Runs, s.TimedOut); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %-8s  %10s  %10s  %10s  %10s\n", "Metric", "Mean", "StdDev", "Median", "Max")
	fmt.Fprintf(w, "  %-8s  %10s  %10s  %10s  %10s\n", "------", "----", "------", "------", "---")
	for _, row := range []struct {
		name string
		st   Stats
	}{
		{"score", s.Score},
		{"seconds", s.Seconds},
	} {
		fmt.Fprintf(w, "  %-8s  %10.2f  %10.2f  %10.2f  %10.2f\n", row.name, row.st.Mean, row.st.StdDev, row.st.Median, row.st.Max)
	}

	causes := make([]string, 0, len(s.Causes))
	for c := range s.Causes {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	fmt.Fprintln(w)
	for _, c := range causes {
		fmt.Fprintf(w, "  %-10s %d\n", c, s.Causes[c])
	}
	return nil
}
