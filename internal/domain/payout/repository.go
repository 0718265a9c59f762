package payout

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Payout, error)
	// Upsert is keyed on (recipient, reason, season) and refreshes the amount.
	Upsert(ctx context.Context, item Payout) (Payout, error)
	TogglePaid(ctx context.Context, payoutID int64) (Payout, bool, error)
}
