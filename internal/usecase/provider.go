package usecase

import "context"

// LeagueSource is the upstream fantasy platform the sync engine mirrors.
type LeagueSource interface {
	FetchNFLState(ctx context.Context) (ExternalNFLState, error)
	FetchLeague(ctx context.Context, leagueID string) (ExternalLeague, error)
	FetchUsers(ctx context.Context, leagueID string) ([]ExternalUser, error)
	FetchRosters(ctx context.Context, leagueID string) ([]ExternalRoster, error)
	FetchMatchups(ctx context.Context, leagueID string, week int) ([]ExternalMatchup, error)
	// FetchWinnersBracket returns an error wrapping ErrNotFound when the
	// league has no bracket yet.
	FetchWinnersBracket(ctx context.Context, leagueID string) ([]ExternalBracketMatch, error)
	FetchPlayers(ctx context.Context) (map[string]ExternalPlayer, error)
	// FetchPlayerWeeklyPoints returns PPR points per played week of the regular season.
	FetchPlayerWeeklyPoints(ctx context.Context, playerID string, season int) ([]float64, error)
}

type ExternalNFLState struct {
	Week   int
	Season int
}

type ExternalLeague struct {
	LeagueID string
	Name     string
	Season   int
}

type ExternalUser struct {
	UserID         string
	DisplayName    string
	CustomTeamName string
}

type ExternalRoster struct {
	RosterID  int
	OwnerID   string
	TeamName  string
	PlayerIDs []string
	Wins      int
	Losses    int
	Ties      int
	PointsFor float64
}

type ExternalMatchup struct {
	RosterID      int
	Points        float64
	PlayersPoints map[string]float64
}

// ExternalBracketMatch holds the roster ids of one bracket slot. Zero means
// the slot is not decided yet.
type ExternalBracketMatch struct {
	Round int
	Match int
	Team1 int
	Team2 int
}

type ExternalPlayer struct {
	PlayerID  string
	FirstName string
	LastName  string
	Position  string
	Team      string
}

func (p ExternalPlayer) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// PayoutNotifier delivers the weekly winners announcement.
type PayoutNotifier interface {
	PostMessage(ctx context.Context, content string) error
}
