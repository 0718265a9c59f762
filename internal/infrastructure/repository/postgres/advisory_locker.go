package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AdvisoryLocker serializes mutating passes across processes with Postgres
// session advisory locks. The lock lives on a dedicated pooled connection
// that is held until release.
type AdvisoryLocker struct {
	db *sqlx.DB
}

func NewAdvisoryLocker(db *sqlx.DB) *AdvisoryLocker {
	return &AdvisoryLocker{db: db}
}

func (l *AdvisoryLocker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	conn, err := l.db.Connx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock connection: %w", err)
	}

	var locked bool
	if err := conn.GetContext(ctx, &locked, "SELECT pg_try_advisory_lock(hashtext($1))", key); err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("try advisory lock key=%s: %w", key, err)
	}
	if !locked {
		_ = conn.Close()
		return nil, false, nil
	}

	release := func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = conn.ExecContext(unlockCtx, "SELECT pg_advisory_unlock(hashtext($1))", key)
		_ = conn.Close()
	}
	return release, true, nil
}
