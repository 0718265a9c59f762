package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
)

type MemberRepository struct {
	store *Store
}

func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{store: store}
}

// withUsername must be called with mu held.
func (r *MemberRepository) withUsername(item member.Member) member.Member {
	if u, ok := r.store.users[item.UserID]; ok {
		item.Username = u.Username
	}
	return item
}

func (r *MemberRepository) List(_ context.Context) ([]member.Member, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]member.Member, 0, len(r.store.members))
	for _, item := range r.store.members {
		out = append(out, r.withUsername(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemberRepository) GetByID(_ context.Context, memberID int64) (member.Member, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.members[memberID]
	if !ok {
		return member.Member{}, false, nil
	}
	return r.withUsername(item), true, nil
}

func (r *MemberRepository) GetBySleeperID(_ context.Context, sleeperID string) (member.Member, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.members {
		if item.SleeperID == sleeperID {
			return r.withUsername(item), true, nil
		}
	}
	return member.Member{}, false, nil
}

func (r *MemberRepository) Create(_ context.Context, input member.NewMember) (member.Member, error) {
	if err := input.Validate(); err != nil {
		return member.Member{}, err
	}
	username := strings.TrimSpace(input.Username)
	sleeperID := strings.TrimSpace(input.SleeperID)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == username {
			return member.Member{}, fmt.Errorf("create user username=%s: duplicate", username)
		}
	}
	for _, m := range r.store.members {
		if m.SleeperID == sleeperID {
			return member.Member{}, fmt.Errorf("create member sleeper_id=%s: duplicate", sleeperID)
		}
	}

	now := r.store.now()
	u := user.User{ID: r.store.nextID(), Username: username, CreatedAt: now}
	r.store.users[u.ID] = u

	item := member.Member{
		ID:        r.store.nextID(),
		UserID:    u.ID,
		FullName:  strings.TrimSpace(input.FullName),
		SleeperID: sleeperID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.members[item.ID] = item
	return r.withUsername(item), nil
}

func (r *MemberRepository) UpdateFullName(_ context.Context, memberID int64, fullName string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.members[memberID]
	if !ok {
		return nil
	}
	item.FullName = strings.TrimSpace(fullName)
	item.UpdatedAt = r.store.now()
	r.store.members[memberID] = item
	return nil
}

func (r *MemberRepository) UpdatePaymentInfo(_ context.Context, memberID int64, paymentInfo string) (member.Member, bool, error) {
	return r.mutate(memberID, func(item *member.Member) {
		item.PaymentInfo = strings.TrimSpace(paymentInfo)
	})
}

func (r *MemberRepository) ToggleDues(_ context.Context, memberID int64) (member.Member, bool, error) {
	return r.mutate(memberID, func(item *member.Member) {
		item.HasPaidDues = !item.HasPaidDues
	})
}

func (r *MemberRepository) mutate(memberID int64, fn func(*member.Member)) (member.Member, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.members[memberID]
	if !ok {
		return member.Member{}, false, nil
	}
	fn(&item)
	item.UpdatedAt = r.store.now()
	r.store.members[memberID] = item
	return r.withUsername(item), true, nil
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) UsernameTaken(_ context.Context, username string, exceptUserID int64) (bool, error) {
	username = strings.TrimSpace(username)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.ID != exceptUserID && u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Rename(_ context.Context, userID int64, username string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[userID]
	if !ok {
		return fmt.Errorf("rename user id=%d: not found", userID)
	}
	u.Username = strings.TrimSpace(username)
	r.store.users[userID] = u
	return nil
}
