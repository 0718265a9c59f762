package user

import "context"

// Repository manages login handles.
type Repository interface {
	// UsernameTaken reports whether any identity other than exceptUserID uses username.
	UsernameTaken(ctx context.Context, username string, exceptUserID int64) (bool, error)
	Rename(ctx context.Context, userID int64, username string) error
}
