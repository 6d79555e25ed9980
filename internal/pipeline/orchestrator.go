package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmorales/tesiscan/internal/analyzer"
	"github.com/dmorales/tesiscan/internal/config"
	"github.com/dmorales/tesiscan/internal/extractor"
)

// Orchestrator manages the document analysis pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	an    *analyzer.Analyzer
	opts  extractor.Options
	log   *slog.Logger
	cfg   config.Config
	stats *Stats

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Start must be called before Submit.
func NewOrchestrator(cfg config.Config, an *analyzer.Analyzer, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		an:    an,
		opts: extractor.Options{
			PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
			OCREnabled:           cfg.OCREnabled,
			OCRLang:              cfg.OCRLang,
		},
		log:   log,
		cfg:   cfg,
		stats: NewStats(cfg.JobTTL),
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.an, o.opts, o.log, o.stats, o.cfg.UploadsDir)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the pipeline latency tracker.
func (o *Orchestrator) Stats() *Stats {
	return o.stats
}
