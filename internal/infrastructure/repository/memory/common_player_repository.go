package memory

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
)

type CommonPlayerRepository struct {
	store *Store
}

func NewCommonPlayerRepository(store *Store) *CommonPlayerRepository {
	return &CommonPlayerRepository{store: store}
}

func (r *CommonPlayerRepository) List(_ context.Context) ([]commonplayer.CommonPlayer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]commonplayer.CommonPlayer{}, r.store.commonPlayers...), nil
}

func (r *CommonPlayerRepository) ReplaceAll(_ context.Context, items []commonplayer.CommonPlayer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.commonPlayers = append([]commonplayer.CommonPlayer{}, items...)
	return nil
}
