package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(jobID uuid.UUID)
}

type worker struct {
	jobRepo      repositories.ParseJobRepository
	parseService ParseService
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	jobRepo repositories.ParseJobRepository,
	parseService ParseService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	return &worker{
		jobRepo:      jobRepo,
		parseService: parseService,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(jobID uuid.UUID) {
	select {
	case w.jobQueue <- jobID:
		log.Printf("📥 Job %s enqueued", jobID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue job %s", jobID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped", workerID)
			return
		case jobID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing job %s", workerID, jobID)
			if err := w.parseService.ParseResume(ctx, jobID); err != nil {
				log.Printf("❌ Worker #%d failed to process job %s: %v", workerID, jobID, err)
			} else {
				log.Printf("✅ Worker #%d completed job %s", workerID, jobID)
			}
		}
	}
}

// pollPendingJobs re-enqueues jobs that were queued before a restart or
// whose enqueue was lost.
func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pendingJobs, err := w.jobRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending jobs: %v", err)
				continue
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
