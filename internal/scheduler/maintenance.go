// Package scheduler drives periodic catalog maintenance on a cron
// schedule.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/openshelf/catalog/internal/tasks"
)

// MaintenanceScheduler periodically enqueues the orphan-author sweep.
type MaintenanceScheduler struct {
	taskClient *tasks.Client
	schedule   string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewMaintenanceScheduler creates a new scheduler instance. The
// schedule uses the standard five-field cron format.
func NewMaintenanceScheduler(taskClient *tasks.Client, schedule string) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		taskClient: taskClient,
		schedule:   schedule,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *MaintenanceScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.enqueueSweep)
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Maintenance scheduler started (schedule: %s)", s.schedule)
	return nil
}

// Stop halts the scheduler. Already-enqueued sweeps still run to
// completion on the task queue.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cron.Remove(s.entryID)
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	log.Println("Maintenance scheduler stopped")
}

func (s *MaintenanceScheduler) enqueueSweep() {
	if _, err := s.taskClient.Add(tasks.CleanupOrphanAuthorsTask{}).Save(); err != nil {
		log.Printf("Failed to enqueue orphan author cleanup: %v", err)
	}
}
