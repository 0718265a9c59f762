package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
)

type CreateLeagueInput struct {
	SleeperLeagueID string `json:"sleeper_league_id" validate:"required,numeric,max=32"`
	Name            string `json:"name" validate:"required,max=100"`
	Season          int    `json:"season" validate:"required,gte=2017,lte=2100"`
	CommissionerID  *int64 `json:"commissioner_id" validate:"omitempty,gt=0"`
}

type LeagueService struct {
	leagueRepo league.Repository
	memberRepo member.Repository
}

func NewLeagueService(leagueRepo league.Repository, memberRepo member.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		memberRepo: memberRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	if leagueID <= 0 {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	return item, nil
}

// CreateLeague registers a platform league so later syncs mirror it.
func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	item := league.League{
		Name:            strings.TrimSpace(input.Name),
		SleeperLeagueID: strings.TrimSpace(input.SleeperLeagueID),
		Season:          input.Season,
		CommissionerID:  input.CommissionerID,
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.leagueRepo.GetBySleeperID(ctx, item.SleeperLeagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by sleeper id: %w", err)
	}
	if exists {
		return league.League{}, fmt.Errorf("%w: league %s is already registered", ErrConflict, item.SleeperLeagueID)
	}

	if item.CommissionerID != nil {
		_, exists, err := s.memberRepo.GetByID(ctx, *item.CommissionerID)
		if err != nil {
			return league.League{}, fmt.Errorf("get commissioner: %w", err)
		}
		if !exists {
			return league.League{}, fmt.Errorf("%w: commissioner member=%d", ErrNotFound, *item.CommissionerID)
		}
	}

	created, err := s.leagueRepo.Create(ctx, item)
	if err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}
	return created, nil
}
