package pipeline

import (
	"testing"
	"time"
)

func TestStats_EmptySnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	snap := s.Snapshot()
	if len(snap) != 0 {
		t.Errorf("expected empty snapshot, got %v", snap)
	}
}

func TestStats_RecordAndSnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	for _, ms := range []int64{10, 20, 30} {
		s.Record(PhaseExtract, ms)
	}
	s.Record(PhaseAnalyze, 5)

	snap := s.Snapshot()
	ex, ok := snap[PhaseExtract]
	if !ok {
		t.Fatal("expected extract phase in snapshot")
	}
	if ex.Count != 3 || ex.MinMs != 10 || ex.MaxMs != 30 {
		t.Errorf("unexpected extract snapshot: %+v", ex)
	}
	if ex.AvgMs != 20 {
		t.Errorf("expected avg 20, got %f", ex.AvgMs)
	}
	if ex.P50Ms != 20 {
		t.Errorf("expected p50 20, got %f", ex.P50Ms)
	}

	an, ok := snap[PhaseAnalyze]
	if !ok {
		t.Fatal("expected analyze phase in snapshot")
	}
	if an.Count != 1 || an.MinMs != 5 || an.MaxMs != 5 {
		t.Errorf("unexpected analyze snapshot: %+v", an)
	}
}

func TestStats_NegativeDurationClamped(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(PhaseAnalyze, -7)
	snap := s.Snapshot()
	if snap[PhaseAnalyze].MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %d", snap[PhaseAnalyze].MinMs)
	}
}

func TestStats_WindowEviction(t *testing.T) {
	s := NewStats(time.Nanosecond)
	s.Record(PhaseExtract, 100)
	time.Sleep(time.Millisecond)
	snap := s.Snapshot()
	if _, ok := snap[PhaseExtract]; ok {
		t.Errorf("expected aged-out samples to be pruned, got %v", snap)
	}
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50}
	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{50, 30},
		{100, 50},
	}
	for _, tc := range tests {
		if got := percentile(values, tc.pct); got != tc.want {
			t.Errorf("percentile(%v, %f) = %f, want %f", values, tc.pct, got, tc.want)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("expected 0 for empty values, got %f", got)
	}
}
