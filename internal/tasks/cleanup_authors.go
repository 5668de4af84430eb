package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// OrphanAuthorsCleaner provides the ability to delete authors that own
// no books.
type OrphanAuthorsCleaner interface {
	DeleteOrphanAuthors() (int64, error)
}

// CleanupOrphanAuthorsTask removes authors left without books. The
// request path already cascades author deletion when the last book
// goes; this sweep covers databases seeded or edited outside the app.
type CleanupOrphanAuthorsTask struct{}

// Config returns the queue configuration for cleanup tasks.
func (t CleanupOrphanAuthorsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_orphan_authors",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupOrphanAuthorsProcessor creates a processor function for
// CleanupOrphanAuthorsTask.
func CleanupOrphanAuthorsProcessor(cleaner OrphanAuthorsCleaner) backlite.QueueProcessor[CleanupOrphanAuthorsTask] {
	return func(ctx context.Context, task CleanupOrphanAuthorsTask) error {
		if cleaner == nil {
			return fmt.Errorf("orphan authors cleaner not configured")
		}

		deleted, err := cleaner.DeleteOrphanAuthors()
		if err != nil {
			return fmt.Errorf("cleanup orphan authors: %w", err)
		}

		if deleted > 0 {
			log.Printf("[TASK] Cleaned up %d orphan authors", deleted)
		}
		return nil
	}
}

// NewCleanupOrphanAuthorsQueue creates a backlite queue for author
// cleanup tasks.
func NewCleanupOrphanAuthorsQueue(cleaner OrphanAuthorsCleaner) backlite.Queue {
	return backlite.NewQueue(CleanupOrphanAuthorsProcessor(cleaner))
}
