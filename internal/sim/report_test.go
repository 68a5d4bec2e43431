package sim

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{Run: 1, Seed: 1, Mode: "speed", Wrap: true, Score: 40, Cause: "wall", Seconds: 12.5},
		{Run: 2, Seed: 2, Mode: "speed", Wrap: true, Score: 70, Cause: "cancelled", TimedOut: true},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected header plus 2 rows:\n%s", len(lines), buf.String())
	}
	header := "run,seed,mode,wrap,score,cause,seconds,steps,fruits,length,turbos,powerups,timed_out"
	if lines[0] != header {
		t.Errorf("header = %q, expected %q", lines[0], header)
	}
	if !strings.HasPrefix(lines[1], "1,1,speed,true,40,wall,") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",true") {
		t.Errorf("row 2 = %q, expected timed_out true", lines[2])
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Score: 10, Seconds: 5, Cause: "wall"},
		{Score: 60, Seconds: 30, Cause: "cancelled", TimedOut: true},
		{Score: 20, Seconds: 10, Cause: "wall"},
	}

	s := Summarize(results)
	if s.Runs != 3 || s.TimedOut != 1 {
		t.Errorf("Runs=%d TimedOut=%d, expected 3 and 1", s.Runs, s.TimedOut)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"score mean", s.Score.Mean, 30},
		{"score median", s.Score.Median, 20},
		{"score max", s.Score.Max, 60},
		{"score stddev", s.Score.StdDev, math.Sqrt(700)},
		{"seconds mean", s.Seconds.Mean, 15},
		{"seconds median", s.Seconds.Median, 10},
		{"seconds max", s.Seconds.Max, 30},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.want)
		}
	}

	if s.Causes["wall"] != 2 || s.Causes["cancelled"] != 1 {
		t.Errorf("Causes = %v, expected wall:2 cancelled:1", s.Causes)
	}

	// The caller's slice order is untouched.
	if results[1].Score != 60 {
		t.Error("Summarize reordered its input")
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	empty := Summarize(nil)
	if empty.Runs != 0 || empty.Score != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v, expected zero stats", empty)
	}

	one := Summarize([]Result{{Score: 50, Seconds: 8, Cause: "self"}})
	if one.Score.StdDev != 0 || one.Score.Median != 50 || one.Score.Mean != 50 {
		t.Errorf("single run stats = %+v, expected mean=median=50 and no deviation", one.Score)
	}
}

func TestSummaryWrite(t *testing.T) {
	s := Summarize([]Result{{Score: 30, Seconds: 4, Cause: "wall"}})

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Runs: 1", "score", "seconds", "wall"} {
		if !strings.Contains(out, want) {
			t.Errorf("Write() output missing %q:\n%s", want, out)
		}
	}
}
