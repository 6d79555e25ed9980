package pipeline

import (
	"sort"
	"sync"
	"time"
)

// Pipeline phases with tracked latencies.
const (
	PhaseExtract = "extract"
	PhaseAnalyze = "analyze"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
}

// PhaseSnapshot is a point-in-time aggregate of latency samples for one
// pipeline phase.
type PhaseSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Stats tracks recent per-phase latencies within a rolling window.
type Stats struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
}

func NewStats(maxAge time.Duration) *Stats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Stats{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
	}
}

func (s *Stats) Record(phase string, durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(phase, now)
	s.samples[phase] = append(s.samples[phase], sample{
		timestamp:  now,
		durationMs: durationMs,
	})
}

// Snapshot aggregates every phase with at least one live sample.
func (s *Stats) Snapshot() map[string]PhaseSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]PhaseSnapshot, len(s.samples))
	for phase := range s.samples {
		s.pruneLocked(phase, now)
		samples := s.samples[phase]
		if len(samples) == 0 {
			continue
		}

		values := make([]int64, 0, len(samples))
		var sum int64
		for _, sm := range samples {
			values = append(values, sm.durationMs)
			sum += sm.durationMs
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

		out[phase] = PhaseSnapshot{
			Count: len(values),
			MinMs: values[0],
			MaxMs: values[len(values)-1],
			AvgMs: float64(sum) / float64(len(values)),
			P50Ms: percentile(values, 50),
			P95Ms: percentile(values, 95),
			P99Ms: percentile(values, 99),
		}
	}
	return out
}

func (s *Stats) pruneLocked(phase string, now time.Time) {
	cutoff := now.Add(-s.maxAge)
	samples := s.samples[phase]
	writeIdx := 0
	for _, sm := range samples {
		if !sm.timestamp.Before(cutoff) {
			samples[writeIdx] = sm
			writeIdx++
		}
	}
	s.samples[phase] = samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
