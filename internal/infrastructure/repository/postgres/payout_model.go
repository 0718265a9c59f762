package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
)

type payoutTableModel struct {
	ID          int64         `db:"id"`
	RecipientID sql.NullInt64 `db:"recipient_id"`
	Amount      float64       `db:"amount"`
	Reason      string        `db:"reason"`
	Season      int           `db:"season"`
	IsPaid      bool          `db:"is_paid"`
	CreatedAt   time.Time     `db:"created_at"`
}

type payoutInsertModel struct {
	RecipientID *int64  `db:"recipient_id"`
	Amount      float64 `db:"amount"`
	Reason      string  `db:"reason"`
	Season      int     `db:"season"`
	IsPaid      bool    `db:"is_paid"`
}

func (m payoutTableModel) toDomain() payout.Payout {
	return payout.Payout{
		ID:          m.ID,
		RecipientID: nullInt64Ptr(m.RecipientID),
		Amount:      m.Amount,
		Reason:      m.Reason,
		Season:      m.Season,
		IsPaid:      m.IsPaid,
		CreatedAt:   m.CreatedAt,
	}
}
