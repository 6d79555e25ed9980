package pipeline

import (
	"testing"
	"time"

	"github.com/dmorales/tesiscan/internal/analyzer"
)

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "abc", Filename: "tesis.pdf", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	got := store.Get("abc")
	if got == nil {
		t.Fatal("expected to retrieve stored job")
	}
	if got.ID != "abc" || got.Filename != "tesis.pdf" {
		t.Errorf("unexpected job: %+v", got)
	}
	if store.Get("missing") != nil {
		t.Error("expected nil for unknown job ID")
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	old := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJob_SetStatusUpdatesTimestamp(t *testing.T) {
	job := &Job{ID: "x", Status: StatusQueued}
	before := job.UpdatedAt
	job.SetStatus(StatusExtracting, "extracting")

	if job.Status != StatusExtracting || job.Phase != "extracting" {
		t.Errorf("unexpected state: %s/%s", job.Status, job.Phase)
	}
	if !job.UpdatedAt.After(before) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestJob_Snapshot(t *testing.T) {
	job := &Job{ID: "snap", Filename: "t.txt", Status: StatusCompleted, Phase: "done"}
	job.AddError("first problem")
	report := analyzer.Report{Structure: []string{"Missing section: Resumen."}}
	job.SetReport(&report)

	snap := job.Snapshot()
	if snap.ID != "snap" || snap.Status != StatusCompleted {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "first problem" {
		t.Errorf("unexpected errors: %v", snap.Errors)
	}
	if snap.Report == nil || len(snap.Report.Structure) != 1 {
		t.Errorf("unexpected report: %+v", snap.Report)
	}

	if snap.Report == job.Report {
		t.Error("snapshot should not expose the job's report pointer")
	}
}

func TestJob_SnapshotWithoutReport(t *testing.T) {
	job := &Job{ID: "pending", Status: StatusQueued}
	snap := job.Snapshot()
	if snap.Report != nil {
		t.Error("expected nil report for pending job")
	}
	if snap.Errors == nil {
		t.Error("expected non-nil errors slice for JSON output")
	}
}

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("hola"))
	b := ContentHashHex([]byte("hola"))
	c := ContentHashHex([]byte("adios"))
	if a != b {
		t.Error("same content should hash identically")
	}
	if a == c {
		t.Error("different content should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
