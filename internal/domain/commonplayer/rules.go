package commonplayer

import (
	"math"
	"sort"
)

// ExcludedPosition is never listed: team defenses are not individual players.
const ExcludedPosition = "DEF"

// CountAppearances tallies one appearance per roster membership. The result
// is ordered by count descending, then by first appearance.
func CountAppearances(contributions []Contribution) []Candidate {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, c := range contributions {
		for _, roster := range c.Rosters {
			for _, playerID := range roster {
				if playerID == "" {
					continue
				}
				if _, ok := counts[playerID]; !ok {
					order = append(order, playerID)
				}
				counts[playerID]++
			}
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, id := range order {
		out = append(out, Candidate{PlayerID: id, Count: counts[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TopCandidates keeps the first n candidates.
func TopCandidates(candidates []Candidate, n int) []Candidate {
	if n < 0 || len(candidates) <= n {
		return candidates
	}
	return candidates[:n]
}

// SeasonAverage is the mean of the strictly positive weekly points. Weeks
// without points do not count.
func SeasonAverage(weekly []float64) float64 {
	var sum float64
	var n int
	for _, pts := range weekly {
		if pts > 0 {
			sum += pts
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// RoundAverage rounds to the two decimals the widget stores and shows.
func RoundAverage(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rank orders scored players by count then average, both descending, and
// assigns ranks 1..limit. Remaining ties keep candidate order. Averages are
// compared unrounded and rounded on output.
func Rank(scored []Scored, limit int) []CommonPlayer {
	sorted := append([]Scored(nil), scored...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].AverageScore > sorted[j].AverageScore
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]CommonPlayer, 0, len(sorted))
	for i, item := range sorted {
		out = append(out, CommonPlayer{
			Rank:         i + 1,
			PlayerID:     item.PlayerID,
			PlayerName:   item.PlayerName,
			Position:     item.Position,
			NFLTeam:      item.NFLTeam,
			Count:        item.Count,
			AverageScore: RoundAverage(item.AverageScore),
		})
	}
	return out
}
