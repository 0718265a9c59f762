package playoff

import "sort"

// ScoredEntry is an active entry with its week score resolved.
type ScoredEntry struct {
	EntryID int64
	TeamID  int64
	Season  int
	Score   float64
}

// RoundResult is the outcome of one entry in a round.
type RoundResult struct {
	EntryID    int64
	TeamID     int64
	Season     int
	Score      float64
	Rank       int
	Eliminated bool
}

// AdvanceCount is the number of entries surviving a round of total entries.
func AdvanceCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + 1) / 2
}

// RankRound ranks entries by score descending with team id ascending as the
// tie-break. The top half, rounded up, advances.
func RankRound(entries []ScoredEntry) []RoundResult {
	sorted := append([]ScoredEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].TeamID < sorted[j].TeamID
	})

	advance := AdvanceCount(len(sorted))
	out := make([]RoundResult, 0, len(sorted))
	for i, item := range sorted {
		rank := i + 1
		out = append(out, RoundResult{
			EntryID:    item.EntryID,
			TeamID:     item.TeamID,
			Season:     item.Season,
			Score:      item.Score,
			Rank:       rank,
			Eliminated: rank > advance,
		})
	}
	return out
}
