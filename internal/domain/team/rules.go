package team

import (
	"fmt"
	"sort"
	"strings"
)

const (
	TopPlayersLimit     = 3
	UnsetTeamName       = "Team Name Not Set"
	playerAvatarURLBase = "https://sleepercdn.com/content/nfl/players/thumb/"
)

// ResolveName picks the first non-empty of the member's custom name, the
// roster metadata name and the owner's display name.
func ResolveName(customName, rosterName, ownerName string, hasOwner bool) string {
	if name := strings.TrimSpace(customName); name != "" {
		return name
	}
	if name := strings.TrimSpace(rosterName); name != "" {
		return name
	}
	if hasOwner {
		return "Team " + strings.TrimSpace(ownerName)
	}
	return UnsetTeamName
}

// PointsFor combines the integer and hundredths parts reported by the platform.
func PointsFor(whole, decimal int) float64 {
	return float64(whole*100+decimal) / 100
}

func PlayerAvatarURL(playerID string) string {
	return fmt.Sprintf("%s%s.jpg", playerAvatarURLBase, playerID)
}

// PlayerTotal is a per-player points accumulator.
type PlayerTotal struct {
	PlayerID string
	Points   float64
}

// RankPlayerTotals orders totals descending and keeps at most limit.
// Equal totals are ordered by player id.
func RankPlayerTotals(totals map[string]float64, limit int) []PlayerTotal {
	out := make([]PlayerTotal, 0, len(totals))
	for id, pts := range totals {
		out = append(out, PlayerTotal{PlayerID: id, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
