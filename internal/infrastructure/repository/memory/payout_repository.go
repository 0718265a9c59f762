package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
)

type PayoutRepository struct {
	store *Store
}

func NewPayoutRepository(store *Store) *PayoutRepository {
	return &PayoutRepository{store: store}
}

func (r *PayoutRepository) List(_ context.Context, filter payout.Filter) ([]payout.Payout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]payout.Payout, 0, len(r.store.payouts))
	for _, item := range r.store.payouts {
		if filter.Season > 0 && item.Season != filter.Season {
			continue
		}
		if filter.RecipientID > 0 && (item.RecipientID == nil || *item.RecipientID != filter.RecipientID) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *PayoutRepository) Upsert(_ context.Context, item payout.Payout) (payout.Payout, error) {
	if err := item.Validate(); err != nil {
		return payout.Payout{}, err
	}
	item.Reason = strings.TrimSpace(item.Reason)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// NULL recipients never conflict, matching the unique index semantics.
	if item.RecipientID != nil {
		for id, existing := range r.store.payouts {
			if existing.RecipientID == nil || *existing.RecipientID != *item.RecipientID {
				continue
			}
			if existing.Reason == item.Reason && existing.Season == item.Season {
				existing.Amount = item.Amount
				r.store.payouts[id] = existing
				return existing, nil
			}
		}
	}

	item.ID = r.store.nextID()
	item.CreatedAt = r.store.now()
	r.store.payouts[item.ID] = item
	return item, nil
}

func (r *PayoutRepository) TogglePaid(_ context.Context, payoutID int64) (payout.Payout, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.payouts[payoutID]
	if !ok {
		return payout.Payout{}, false, nil
	}
	item.IsPaid = !item.IsPaid
	r.store.payouts[payoutID] = item
	return item, true, nil
}
