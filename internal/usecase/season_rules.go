package usecase

const (
	defaultPlayoffStartWeek       = 15
	defaultSeasonMaxWeek          = 18
	defaultCommonPlayerCandidates = 15
	defaultCommonPlayerLimit      = 10
	defaultWeeklyPayoutAmount     = 5
	defaultSleeperDisplayName     = "SleeperUser"
)

// SeasonRules are the league business constants shared by the sync,
// tournament and payout passes.
type SeasonRules struct {
	PlayoffStartWeek         int
	MaxWeek                  int
	CommonPlayerCandidates   int
	CommonPlayerLimit        int
	CommonPlayerStatsWorkers int
	WeeklyPayoutAmount       float64
}

func (r SeasonRules) withDefaults() SeasonRules {
	if r.PlayoffStartWeek <= 0 {
		r.PlayoffStartWeek = defaultPlayoffStartWeek
	}
	if r.MaxWeek <= 0 {
		r.MaxWeek = defaultSeasonMaxWeek
	}
	if r.CommonPlayerCandidates <= 0 {
		r.CommonPlayerCandidates = defaultCommonPlayerCandidates
	}
	if r.CommonPlayerLimit <= 0 {
		r.CommonPlayerLimit = defaultCommonPlayerLimit
	}
	if r.CommonPlayerStatsWorkers <= 0 {
		r.CommonPlayerStatsWorkers = 1
	}
	if r.WeeklyPayoutAmount <= 0 {
		r.WeeklyPayoutAmount = defaultWeeklyPayoutAmount
	}
	return r
}
