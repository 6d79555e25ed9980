package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dmorales/tesiscan/internal/analyzer"
	"github.com/dmorales/tesiscan/internal/extractor"
)

// Worker processes a single document job: extract text, analyze, attach the
// report.
type Worker struct {
	an         *analyzer.Analyzer
	opts       extractor.Options
	log        *slog.Logger
	stats      *Stats
	uploadsDir string
}

func NewWorker(an *analyzer.Analyzer, opts extractor.Options, log *slog.Logger, stats *Stats, uploadsDir string) *Worker {
	return &Worker{
		an:         an,
		opts:       opts,
		log:        log,
		stats:      stats,
		uploadsDir: uploadsDir,
	}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError("canceled before processing")
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Extract text.
	job.SetStatus(StatusExtracting, "extracting")
	ex, err := extractor.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	start := time.Now()
	text, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	w.stats.Record(PhaseExtract, time.Since(start).Milliseconds())
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	if w.uploadsDir != "" {
		if err := w.archiveUpload(job); err != nil {
			// Archiving is best effort; the analysis still proceeds.
			log.Warn("upload archive failed", "error", err)
		}
	}

	// Phase 2: Analyze.
	job.SetStatus(StatusAnalyzing, "analyzing")
	start = time.Now()
	report := w.an.Analyze(text)
	w.stats.Record(PhaseAnalyze, time.Since(start).Milliseconds())

	job.SetReport(&report)
	job.SetStatus(StatusCompleted, "done")
	log.Info("analysis complete",
		"text_bytes", len(text),
		"observations", report.Total(),
	)
}

func (w *Worker) archiveUpload(job *Job) error {
	if err := os.MkdirAll(w.uploadsDir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	path := filepath.Join(w.uploadsDir, job.ID+"_"+job.Filename)
	if err := os.WriteFile(path, job.FileData(), 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}
	return nil
}
