package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
)

type JobRunRepository struct {
	store *Store
}

func NewJobRunRepository(store *Store) *JobRunRepository {
	return &JobRunRepository{store: store}
}

func (r *JobRunRepository) UpsertEvent(_ context.Context, event jobrun.Event) error {
	runID := strings.TrimSpace(event.RunID)
	if runID == "" {
		return fmt.Errorf("run id is required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if prev, ok := r.store.jobRuns[runID]; ok && len(event.Payload) == 0 {
		event.Payload = prev.Payload
	}
	r.store.jobRuns[runID] = event
	return nil
}

// Get returns the latest recorded event for a run.
func (r *JobRunRepository) Get(runID string) (jobrun.Event, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.jobRuns[runID]
	return event, ok
}
