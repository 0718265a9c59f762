package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
)

const memberSelectColumns = "m.id, m.user_id, u.username, m.full_name, m.sleeper_id, m.payment_info, m.has_paid_dues, m.discord_username, m.invited_by_id, m.created_at, m.updated_at"

const memberFromJoin = "members m JOIN users u ON u.id = m.user_id"

type memberTableModel struct {
	ID              int64         `db:"id"`
	UserID          int64         `db:"user_id"`
	Username        string        `db:"username"`
	FullName        string        `db:"full_name"`
	SleeperID       string        `db:"sleeper_id"`
	PaymentInfo     string        `db:"payment_info"`
	HasPaidDues     bool          `db:"has_paid_dues"`
	DiscordUsername string        `db:"discord_username"`
	InvitedByID     sql.NullInt64 `db:"invited_by_id"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

type userInsertModel struct {
	Username string `db:"username"`
}

type memberInsertModel struct {
	UserID    int64  `db:"user_id"`
	FullName  string `db:"full_name,omitempty"`
	SleeperID string `db:"sleeper_id"`
}

func (m memberTableModel) toDomain() member.Member {
	return member.Member{
		ID:              m.ID,
		UserID:          m.UserID,
		Username:        m.Username,
		FullName:        m.FullName,
		SleeperID:       m.SleeperID,
		PaymentInfo:     m.PaymentInfo,
		HasPaidDues:     m.HasPaidDues,
		DiscordUsername: m.DiscordUsername,
		InvitedByID:     nullInt64Ptr(m.InvitedByID),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
