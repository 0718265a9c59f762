package commonplayer

// CommonPlayer is one row of the league-wide most rostered players table.
type CommonPlayer struct {
	Rank         int
	PlayerID     string
	PlayerName   string
	Position     string
	NFLTeam      string
	Count        int
	AverageScore float64
}

// Contribution is the set of candidate rosters one league adds to the
// aggregation. Each roster is a list of player ids.
type Contribution struct {
	LeagueID string
	Rosters  [][]string
}

// Candidate is a player with its roster appearance count.
type Candidate struct {
	PlayerID string
	Count    int
}

// Scored is a candidate enriched with directory data and season average.
type Scored struct {
	Candidate
	PlayerName   string
	Position     string
	NFLTeam      string
	AverageScore float64
}
