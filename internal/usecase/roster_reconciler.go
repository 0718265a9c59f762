package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

type RosterResult struct {
	Upserted       int `json:"upserted"`
	Skipped        int `json:"skipped"`
	UnknownOwners  int `json:"unknown_owners"`
	OwnerlessTeams int `json:"ownerless_teams"`
}

// RosterReconciler upserts one team per platform roster with its owner,
// resolved name and standings.
type RosterReconciler struct {
	memberRepo member.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
}

func NewRosterReconciler(memberRepo member.Repository, teamRepo team.Repository, logger *logging.Logger) *RosterReconciler {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterReconciler{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (r *RosterReconciler) Reconcile(ctx context.Context, leagueID int64, rosters []ExternalRoster, customNames map[string]string) (RosterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterReconciler.Reconcile")
	defer span.End()

	var result RosterResult
	for _, roster := range rosters {
		if roster.RosterID <= 0 {
			result.Skipped++
			continue
		}

		var (
			ownerID   *int64
			ownerName string
		)
		ownerSleeperID := strings.TrimSpace(roster.OwnerID)
		if ownerSleeperID != "" {
			owner, exists, err := r.memberRepo.GetBySleeperID(ctx, ownerSleeperID)
			if err != nil {
				return result, fmt.Errorf("get roster owner sleeper_id=%s: %w", ownerSleeperID, err)
			}
			if exists {
				id := owner.ID
				ownerID = &id
				ownerName = owner.DisplayName()
			} else {
				result.UnknownOwners++
				r.logger.WarnContext(ctx, "roster owner has no member profile",
					"league_id", leagueID,
					"roster_id", roster.RosterID,
					"owner_sleeper_id", ownerSleeperID,
				)
			}
		}
		if ownerID == nil {
			result.OwnerlessTeams++
		}

		standing := team.Standing{
			LeagueID:        leagueID,
			SleeperRosterID: roster.RosterID,
			OwnerID:         ownerID,
			TeamName:        team.ResolveName(customNames[ownerSleeperID], roster.TeamName, ownerName, ownerID != nil),
			Wins:            roster.Wins,
			Losses:          roster.Losses,
			Ties:            roster.Ties,
			PointsFor:       roster.PointsFor,
		}
		if _, err := r.teamRepo.UpsertStanding(ctx, standing); err != nil {
			return result, fmt.Errorf("upsert standing league_id=%d roster_id=%d: %w", leagueID, roster.RosterID, err)
		}
		result.Upserted++
	}

	return result, nil
}
