package scheduler

import (
	"log"
	"time"

	"mailsync-backend/internal/email/usecase"
)

// SyncScheduler fires a fleet sync pass at a fixed interval.
type SyncScheduler struct {
	syncUsecase usecase.SyncUsecase
	interval    time.Duration
	stopChan    chan struct{}
}

// NewSyncScheduler creates a new scheduler
func NewSyncScheduler(syncUsecase usecase.SyncUsecase, interval time.Duration) *SyncScheduler {
	return &SyncScheduler{
		syncUsecase: syncUsecase,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *SyncScheduler) Start() {
	log.Printf("[SyncScheduler] Starting email sync scheduler (interval: %s)", s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Each tick runs in its own goroutine; a tick may overlap
				// a still-running pass.
				go s.runScheduledSync()
			case <-s.stopChan:
				log.Println("[SyncScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *SyncScheduler) Stop() {
	close(s.stopChan)
}

func (s *SyncScheduler) runScheduledSync() {
	log.Printf("[SyncScheduler] Starting scheduled email sync")
	if err := s.syncUsecase.SyncAllUsers(); err != nil {
		log.Printf("[SyncScheduler] Scheduled email sync failed: %v", err)
		return
	}
	log.Printf("[SyncScheduler] Scheduled email sync completed")
}
