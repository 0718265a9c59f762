package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
)

type ScoreIngestionInput struct {
	LeagueID        int64
	SleeperLeagueID string
	Season          int
}

type ScoreIngestionResult struct {
	WeeksProcessed int `json:"weeks_processed"`
	ScoresWritten  int `json:"scores_written"`
	UnknownRosters int `json:"unknown_rosters"`
	TopPlayerTeams int `json:"top_player_teams"`
}

// ScoreIngestion walks the season week by week, stores every team's weekly
// points and rebuilds each team's top scorers from the per-player breakdowns.
type ScoreIngestion struct {
	source    LeagueSource
	teamRepo  team.Repository
	scoreRepo weeklyscore.Repository
	maxWeek   int
	logger    *logging.Logger
}

func NewScoreIngestion(source LeagueSource, teamRepo team.Repository, scoreRepo weeklyscore.Repository, rules SeasonRules, logger *logging.Logger) *ScoreIngestion {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoreIngestion{
		source:    source,
		teamRepo:  teamRepo,
		scoreRepo: scoreRepo,
		maxWeek:   rules.withDefaults().MaxWeek,
		logger:    logger,
	}
}

func (s *ScoreIngestion) Ingest(ctx context.Context, input ScoreIngestionInput) (ScoreIngestionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreIngestion.Ingest")
	defer span.End()

	var result ScoreIngestionResult
	if input.Season <= 0 {
		return result, fmt.Errorf("%w: season is required for score ingestion", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx, team.ListFilter{LeagueID: input.LeagueID})
	if err != nil {
		return result, fmt.Errorf("list league teams: %w", err)
	}
	byRoster := make(map[int]team.Team, len(teams))
	for _, item := range teams {
		byRoster[item.SleeperRosterID] = item
	}

	playerTotals := make(map[int]map[string]float64, len(teams))
	for week := 1; week <= s.maxWeek; week++ {
		matchups, err := s.source.FetchMatchups(ctx, input.SleeperLeagueID, week)
		if err != nil {
			return result, fmt.Errorf("fetch matchups week=%d: %w", week, err)
		}
		if len(matchups) == 0 {
			s.logger.DebugContext(ctx, "no matchups, stopping score walk",
				"league_id", input.LeagueID,
				"week", week,
			)
			break
		}
		result.WeeksProcessed++

		for _, matchup := range matchups {
			if matchup.RosterID <= 0 {
				continue
			}
			item, ok := byRoster[matchup.RosterID]
			if !ok {
				result.UnknownRosters++
				continue
			}
			if err := s.scoreRepo.Upsert(ctx, weeklyscore.WeeklyScore{
				TeamID:       item.ID,
				Week:         week,
				Season:       input.Season,
				PointsScored: matchup.Points,
			}); err != nil {
				return result, fmt.Errorf("upsert weekly score team_id=%d week=%d: %w", item.ID, week, err)
			}
			result.ScoresWritten++

			if len(matchup.PlayersPoints) == 0 {
				continue
			}
			totals := playerTotals[matchup.RosterID]
			if totals == nil {
				totals = make(map[string]float64, len(matchup.PlayersPoints))
				playerTotals[matchup.RosterID] = totals
			}
			for playerID, pts := range matchup.PlayersPoints {
				totals[playerID] += pts
			}
		}
	}

	directory := s.playerDirectory(ctx, len(playerTotals) > 0)
	for _, item := range teams {
		ranked := team.RankPlayerTotals(playerTotals[item.SleeperRosterID], team.TopPlayersLimit)
		players := make([]team.TopPlayer, 0, len(ranked))
		for _, total := range ranked {
			info := directory[total.PlayerID]
			players = append(players, team.TopPlayer{
				PlayerID:    total.PlayerID,
				Name:        info.FullName(),
				Position:    info.Position,
				TotalPoints: weeklyscore.RoundPoints(total.Points),
				AvatarURL:   team.PlayerAvatarURL(total.PlayerID),
			})
		}
		if err := s.teamRepo.ReplaceTopPlayers(ctx, item.ID, players); err != nil {
			return result, fmt.Errorf("replace top players team_id=%d: %w", item.ID, err)
		}
		result.TopPlayerTeams++
	}

	return result, nil
}

// playerDirectory tolerates a failed lookup; names are left empty then.
func (s *ScoreIngestion) playerDirectory(ctx context.Context, needed bool) map[string]ExternalPlayer {
	if !needed {
		return nil
	}
	players, err := s.source.FetchPlayers(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch player directory for top players failed", "error", err)
		return nil
	}
	return players
}
