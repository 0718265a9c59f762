package jobrun

import "context"

type Repository interface {
	UpsertEvent(ctx context.Context, event Event) error
}

// Locker provides a process-wide non-blocking mutual exclusion between
// mutating passes. ok is false when another holder owns key.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}
