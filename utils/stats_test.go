package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats("random patterns")

	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.TotalGenerations != 1 || s.PeakPopulation != 100 {
		t.Fatalf("first update gave %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("zero duration changed gen/sec to %v", s.GenerationsPerSecond)
	}

	s.Update(3, 50, time.Second)
	if s.PeakPopulation != 200 {
		t.Fatalf("peak = %d, want 200", s.PeakPopulation)
	}
}

func TestStatsRestartSummary(t *testing.T) {
	s := NewStats("seed.png")
	if got := s.RestartSummary(); got != "0" {
		t.Fatalf("summary = %q, want 0", got)
	}

	s.RecordRestart("periodic refresh")
	s.RecordRestart("extinction")
	s.RecordRestart("extinction")

	if got, want := s.RestartSummary(), "3 (extinction: 2, periodic refresh: 1)"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}
