package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
)

type ScoreService struct {
	scoreRepo  weeklyscore.Repository
	commonRepo commonplayer.Repository
}

func NewScoreService(scoreRepo weeklyscore.Repository, commonRepo commonplayer.Repository) *ScoreService {
	return &ScoreService{
		scoreRepo:  scoreRepo,
		commonRepo: commonRepo,
	}
}

func (s *ScoreService) ListScores(ctx context.Context, filter weeklyscore.Filter) ([]weeklyscore.WeeklyScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ListScores")
	defer span.End()

	if filter.TeamID < 0 || filter.LeagueID < 0 || filter.Week < 0 || filter.Season < 0 {
		return nil, fmt.Errorf("%w: filters must be positive", ErrInvalidInput)
	}
	items, err := s.scoreRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list weekly scores: %w", err)
	}
	return items, nil
}

func (s *ScoreService) ListCommonPlayers(ctx context.Context) ([]commonplayer.CommonPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ListCommonPlayers")
	defer span.End()

	items, err := s.commonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list common players: %w", err)
	}
	return items, nil
}
