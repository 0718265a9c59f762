package commonplayer

import "context"

type Repository interface {
	List(ctx context.Context) ([]CommonPlayer, error)
	// ReplaceAll deletes every row and inserts items in one transaction.
	ReplaceAll(ctx context.Context, items []CommonPlayer) error
}
