package jobrun

import "time"

type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job names accepted by the trigger endpoints and the jobs CLI.
const (
	JobSync           = "sync"
	JobStartPlayoff   = "start-playoff"
	JobRunElimination = "run-elimination"
	JobPostWinners    = "post-winners"
)

// Event is one state transition of a triggered job run.
type Event struct {
	RunID        string
	JobName      string
	Trigger      string
	Status       Status
	Payload      map[string]any
	ErrorMessage string
	OccurredAt   time.Time
	TraceID      string
	SpanID       string
}
