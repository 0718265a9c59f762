package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
)

type TeamListInput struct {
	LeagueID int64
	Ordering string
}

type TeamService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewTeamService(leagueRepo league.Repository, teamRepo team.Repository) *TeamService {
	return &TeamService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context, input TeamListInput) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	ordering, err := team.ParseOrdering(input.Ordering)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.list(ctx, team.ListFilter{LeagueID: input.LeagueID, Ordering: ordering})
}

// PowerRankings orders teams by wins, then points for, both descending.
func (s *TeamService) PowerRankings(ctx context.Context, leagueID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.PowerRankings")
	defer span.End()

	return s.list(ctx, team.ListFilter{LeagueID: leagueID, Ordering: team.OrderPowerRanking})
}

func (s *TeamService) TogglePlayoffFlag(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TogglePlayoffFlag")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	item, exists, err := s.teamRepo.TogglePlayoffFlag(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("toggle playoff flag: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) list(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	if filter.LeagueID < 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if filter.LeagueID > 0 {
		_, exists, err := s.leagueRepo.GetByID(ctx, filter.LeagueID)
		if err != nil {
			return nil, fmt.Errorf("get league: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: league=%d", ErrNotFound, filter.LeagueID)
		}
	}

	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
