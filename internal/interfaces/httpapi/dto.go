package httpapi

import (
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

type leagueDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	SleeperLeagueID string `json:"sleeper_league_id"`
	Season          int    `json:"season"`
	CommissionerID  *int64 `json:"commissioner_id"`
}

type memberDTO struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	FullName        string `json:"full_name"`
	SleeperID       string `json:"sleeper_id"`
	HasPaidDues     bool   `json:"has_paid_dues"`
	DiscordUsername string `json:"discord_username,omitempty"`
	PaymentInfo     string `json:"payment_info,omitempty"`
}

type teamDTO struct {
	ID                 int64            `json:"id"`
	LeagueID           int64            `json:"league_id"`
	OwnerID            *int64           `json:"owner_id"`
	SleeperRosterID    int              `json:"sleeper_roster_id"`
	TeamName           string           `json:"team_name"`
	MadeLeaguePlayoffs bool             `json:"made_league_playoffs"`
	Wins               int              `json:"wins"`
	Losses             int              `json:"losses"`
	Ties               int              `json:"ties"`
	PointsFor          float64          `json:"points_for"`
	TopPlayers         []team.TopPlayer `json:"top_players"`
}

type weeklyScoreDTO struct {
	ID           int64   `json:"id"`
	TeamID       int64   `json:"team_id"`
	Week         int     `json:"week"`
	Season       int     `json:"season"`
	PointsScored float64 `json:"points_scored"`
}

type playoffEntryDTO struct {
	ID           int64   `json:"id"`
	TeamID       int64   `json:"team_id"`
	Season       int     `json:"season"`
	PlayoffWeek  int     `json:"playoff_week"`
	WeekScore    float64 `json:"week_score"`
	IsEliminated bool    `json:"is_eliminated"`
	FinalRank    *int    `json:"final_rank"`
}

type roundResultDTO struct {
	EntryID    int64   `json:"entry_id"`
	TeamID     int64   `json:"team_id"`
	Season     int     `json:"season"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	Eliminated bool    `json:"eliminated"`
}

type runRoundDTO struct {
	Week          int              `json:"week"`
	NextWeek      int              `json:"next_week,omitempty"`
	Contenders    int              `json:"contenders"`
	AdvanceCount  int              `json:"advance_count"`
	MissingScores int              `json:"missing_scores"`
	FinalWeek     bool             `json:"final_week"`
	Results       []roundResultDTO `json:"results"`
}

type payoutDTO struct {
	ID          int64     `json:"id"`
	RecipientID *int64    `json:"recipient_id"`
	Amount      float64   `json:"amount"`
	Reason      string    `json:"reason"`
	Season      int       `json:"season"`
	IsPaid      bool      `json:"is_paid"`
	CreatedAt   time.Time `json:"created_at"`
}

type commonPlayerDTO struct {
	Rank         int     `json:"rank"`
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Position     string  `json:"position"`
	NFLTeam      string  `json:"nfl_team"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"average_score"`
}

// jobTriggeredDTO wraps a job result with the run id recorded for it.
type jobTriggeredDTO struct {
	RunID  string `json:"run_id"`
	Result any    `json:"result"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:              v.ID,
		Name:            v.Name,
		SleeperLeagueID: v.SleeperLeagueID,
		Season:          v.Season,
		CommissionerID:  v.CommissionerID,
	}
}

// memberToDTO relies on the use case to blank PaymentInfo for public reads.
func memberToDTO(v member.Member) memberDTO {
	return memberDTO{
		ID:              v.ID,
		Username:        v.Username,
		FullName:        v.DisplayName(),
		SleeperID:       v.SleeperID,
		HasPaidDues:     v.HasPaidDues,
		DiscordUsername: v.DiscordUsername,
		PaymentInfo:     v.PaymentInfo,
	}
}

func teamToDTO(v team.Team) teamDTO {
	topPlayers := v.TopPlayers
	if topPlayers == nil {
		topPlayers = []team.TopPlayer{}
	}
	return teamDTO{
		ID:                 v.ID,
		LeagueID:           v.LeagueID,
		OwnerID:            v.OwnerID,
		SleeperRosterID:    v.SleeperRosterID,
		TeamName:           v.TeamName,
		MadeLeaguePlayoffs: v.MadeLeaguePlayoffs,
		Wins:               v.Wins,
		Losses:             v.Losses,
		Ties:               v.Ties,
		PointsFor:          v.PointsFor,
		TopPlayers:         topPlayers,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func weeklyScoreToDTO(v weeklyscore.WeeklyScore) weeklyScoreDTO {
	return weeklyScoreDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Week:         v.Week,
		Season:       v.Season,
		PointsScored: v.PointsScored,
	}
}

func playoffEntryToDTO(v playoff.Entry) playoffEntryDTO {
	return playoffEntryDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Season:       v.Season,
		PlayoffWeek:  v.PlayoffWeek,
		WeekScore:    v.WeekScore,
		IsEliminated: v.IsEliminated,
		FinalRank:    v.FinalRank,
	}
}

func runRoundToDTO(v usecase.RunRoundResult) runRoundDTO {
	results := make([]roundResultDTO, 0, len(v.Results))
	for _, r := range v.Results {
		results = append(results, roundResultDTO{
			EntryID:    r.EntryID,
			TeamID:     r.TeamID,
			Season:     r.Season,
			Score:      r.Score,
			Rank:       r.Rank,
			Eliminated: r.Eliminated,
		})
	}
	return runRoundDTO{
		Week:          v.Week,
		NextWeek:      v.NextWeek,
		Contenders:    v.Contenders,
		AdvanceCount:  v.AdvanceCount,
		MissingScores: v.MissingScores,
		FinalWeek:     v.FinalWeek,
		Results:       results,
	}
}

func payoutToDTO(v payout.Payout) payoutDTO {
	return payoutDTO{
		ID:          v.ID,
		RecipientID: v.RecipientID,
		Amount:      v.Amount,
		Reason:      v.Reason,
		Season:      v.Season,
		IsPaid:      v.IsPaid,
		CreatedAt:   v.CreatedAt,
	}
}

func commonPlayerToDTO(v commonplayer.CommonPlayer) commonPlayerDTO {
	return commonPlayerDTO{
		Rank:         v.Rank,
		PlayerID:     v.PlayerID,
		PlayerName:   v.PlayerName,
		Position:     v.Position,
		NFLTeam:      v.NFLTeam,
		Count:        v.Count,
		AverageScore: v.AverageScore,
	}
}
