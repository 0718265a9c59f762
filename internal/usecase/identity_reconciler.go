package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

const maxUsernameSuffix = 1000

type IdentityResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Renamed int `json:"renamed"`
	Skipped int `json:"skipped"`
	// CustomTeamNames maps platform user id to the member's custom team name.
	CustomTeamNames map[string]string `json:"-"`
}

// IdentityReconciler keeps members aligned with the platform users of a league.
// Members are matched on their platform id and never deleted.
type IdentityReconciler struct {
	memberRepo member.Repository
	userRepo   user.Repository
	logger     *logging.Logger
}

func NewIdentityReconciler(memberRepo member.Repository, userRepo user.Repository, logger *logging.Logger) *IdentityReconciler {
	if logger == nil {
		logger = logging.Default()
	}
	return &IdentityReconciler{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (r *IdentityReconciler) Reconcile(ctx context.Context, users []ExternalUser) (IdentityResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IdentityReconciler.Reconcile")
	defer span.End()

	result := IdentityResult{CustomTeamNames: make(map[string]string, len(users))}
	for _, item := range users {
		sleeperID := strings.TrimSpace(item.UserID)
		if sleeperID == "" {
			result.Skipped++
			continue
		}
		if name := strings.TrimSpace(item.CustomTeamName); name != "" {
			result.CustomTeamNames[sleeperID] = name
		}

		displayName := strings.TrimSpace(item.DisplayName)
		if displayName == "" {
			displayName = defaultSleeperDisplayName
		}

		existing, exists, err := r.memberRepo.GetBySleeperID(ctx, sleeperID)
		if err != nil {
			return result, fmt.Errorf("get member sleeper_id=%s: %w", sleeperID, err)
		}
		if !exists {
			if err := r.create(ctx, sleeperID, displayName); err != nil {
				return result, err
			}
			result.Created++
			continue
		}

		renamed, err := r.refresh(ctx, existing, displayName)
		if err != nil {
			return result, err
		}
		result.Updated++
		if renamed {
			result.Renamed++
		}
	}

	return result, nil
}

func (r *IdentityReconciler) create(ctx context.Context, sleeperID, displayName string) error {
	username, err := r.allocateUsername(ctx, displayName)
	if err != nil {
		return err
	}

	created, err := r.memberRepo.Create(ctx, member.NewMember{
		Username:  username,
		FullName:  displayName,
		SleeperID: sleeperID,
	})
	if err != nil {
		return fmt.Errorf("create member sleeper_id=%s: %w", sleeperID, err)
	}
	r.logger.InfoContext(ctx, "member created",
		"member_id", created.ID,
		"sleeper_id", sleeperID,
		"username", username,
	)
	return nil
}

// refresh overwrites the display name and follows it with the login handle
// when the new handle is free.
func (r *IdentityReconciler) refresh(ctx context.Context, existing member.Member, displayName string) (bool, error) {
	if existing.FullName != displayName {
		if err := r.memberRepo.UpdateFullName(ctx, existing.ID, displayName); err != nil {
			return false, fmt.Errorf("update member full name member_id=%d: %w", existing.ID, err)
		}
	}
	if existing.Username == displayName {
		return false, nil
	}

	taken, err := r.userRepo.UsernameTaken(ctx, displayName, existing.UserID)
	if err != nil {
		return false, fmt.Errorf("check username %q: %w", displayName, err)
	}
	if taken {
		return false, nil
	}
	if err := r.userRepo.Rename(ctx, existing.UserID, displayName); err != nil {
		return false, fmt.Errorf("rename user user_id=%d: %w", existing.UserID, err)
	}
	return true, nil
}

func (r *IdentityReconciler) allocateUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for suffix := 1; suffix <= maxUsernameSuffix; suffix++ {
		taken, err := r.userRepo.UsernameTaken(ctx, candidate, 0)
		if err != nil {
			return "", fmt.Errorf("check username %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, suffix)
	}
	return "", fmt.Errorf("%w: no free username for %q", ErrConflict, base)
}
