package sleeper

import "strconv"

type nflStateResponse struct {
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
}

type leagueResponse struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	Season   string `json:"season"`
}

type userResponse struct {
	UserID      string         `json:"user_id"`
	DisplayName string         `json:"display_name"`
	Metadata    map[string]any `json:"metadata"`
}

type rosterResponse struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Players  []string       `json:"players"`
	Settings rosterSettings `json:"settings"`
	Metadata map[string]any `json:"metadata"`
}

type rosterSettings struct {
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Ties        int `json:"ties"`
	Fpts        int `json:"fpts"`
	FptsDecimal int `json:"fpts_decimal"`
}

type matchupResponse struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     *int               `json:"matchup_id"`
	Points        float64            `json:"points"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

type bracketMatchResponse struct {
	Round  int  `json:"r"`
	Match  int  `json:"m"`
	Team1  *int `json:"t1"`
	Team2  *int `json:"t2"`
	Winner *int `json:"w"`
	Loser  *int `json:"l"`
}

type playerResponse struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// weeklyStatsResponse maps week number to that week's line. Bye weeks are null.
type weeklyStatsResponse map[string]*weekStatLine

type weekStatLine struct {
	Week  int            `json:"week"`
	Stats map[string]any `json:"stats"`
}

func metadataString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	switch v := meta[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func parseSeason(raw string) int {
	season, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return season
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func asFloat64(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		out, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return out
	default:
		return 0
	}
}
