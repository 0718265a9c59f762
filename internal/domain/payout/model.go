package payout

import (
	"fmt"
	"strings"
	"time"
)

// Payout is money owed to a member, such as a weekly high score prize.
type Payout struct {
	ID          int64
	RecipientID *int64
	Amount      float64
	Reason      string
	Season      int
	IsPaid      bool
	CreatedAt   time.Time
}

func (p Payout) Validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("amount must be > 0")
	}
	if strings.TrimSpace(p.Reason) == "" {
		return fmt.Errorf("reason is required")
	}
	if p.Season <= 0 {
		return fmt.Errorf("season is required")
	}
	return nil
}

func WeeklyWinnerReason(week int) string {
	return fmt.Sprintf("Weekly Winner Week %d", week)
}

type Filter struct {
	Season      int
	RecipientID int64
}
