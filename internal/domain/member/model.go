package member

import (
	"fmt"
	"strings"
	"time"
)

// Member is a league participant. SleeperID is the identity key for
// reconciliation; FullName mirrors the platform display name.
type Member struct {
	ID              int64
	UserID          int64
	Username        string
	FullName        string
	SleeperID       string
	PaymentInfo     string
	HasPaidDues     bool
	DiscordUsername string
	InvitedByID     *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMember is the payload for creating a member together with its login identity.
type NewMember struct {
	Username  string
	FullName  string
	SleeperID string
}

func (n NewMember) Validate() error {
	if strings.TrimSpace(n.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(n.SleeperID) == "" {
		return fmt.Errorf("sleeper id is required")
	}
	return nil
}

// DisplayName falls back to the login handle when no display name was synced.
func (m Member) DisplayName() string {
	if name := strings.TrimSpace(m.FullName); name != "" {
		return name
	}
	return m.Username
}
