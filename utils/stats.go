package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats tracks how a run is going across restarts
type Stats struct {
	SeedSource           string
	StartTime            time.Time
	TotalGenerations     int
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	Restarts             map[string]int // restart reason -> count
}

// NewStats starts the clock for a run seeded from source
func NewStats(source string) *Stats {
	return &Stats{
		SeedSource: source,
		StartTime:  time.Now(),
		Restarts:   make(map[string]int),
	}
}

// Update records one generation that took duration to produce
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	// exponential moving average, seeded by the first sample
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}

// RecordRestart counts a reseed and why it happened
func (s *Stats) RecordRestart(reason string) {
	s.Restarts[reason]++
}

// RestartSummary lists restart counts by reason, e.g. "2 (extinction: 1, periodic refresh: 1)"
func (s *Stats) RestartSummary() string {
	if len(s.Restarts) == 0 {
		return "0"
	}

	var (
		total   int
		reasons = make([]string, 0, len(s.Restarts))
	)
	for reason, n := range s.Restarts {
		total += n
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = fmt.Sprintf("%s: %d", reason, s.Restarts[reason])
	}
	return fmt.Sprintf("%d (%s)", total, strings.Join(parts, ", "))
}
