package league

import (
	"fmt"
	"strings"
	"time"
)

// League is a fantasy league mirrored from the platform.
type League struct {
	ID              int64
	Name            string
	SleeperLeagueID string
	Season          int
	CommissionerID  *int64
	CreatedAt       time.Time
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(l.SleeperLeagueID) == "" {
		return fmt.Errorf("sleeper league id is required")
	}
	if l.Season <= 0 {
		return fmt.Errorf("league season is required")
	}

	return nil
}
