package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type PayoutRepository struct {
	db *sqlx.DB
}

func NewPayoutRepository(db *sqlx.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

func (r *PayoutRepository) List(ctx context.Context, filter payout.Filter) ([]payout.Payout, error) {
	conds := make([]qb.Condition, 0, 2)
	if filter.Season > 0 {
		conds = append(conds, qb.Eq("season", filter.Season))
	}
	if filter.RecipientID > 0 {
		conds = append(conds, qb.Eq("recipient_id", filter.RecipientID))
	}

	query, args, err := qb.Select("*").From("payouts").
		Where(conds...).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select payouts query: %w", err)
	}

	var rows []payoutTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select payouts: %w", err)
	}

	out := make([]payout.Payout, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PayoutRepository) Upsert(ctx context.Context, item payout.Payout) (payout.Payout, error) {
	if err := item.Validate(); err != nil {
		return payout.Payout{}, err
	}

	query, args, err := qb.InsertModel("payouts", payoutInsertModel{
		RecipientID: item.RecipientID,
		Amount:      item.Amount,
		Reason:      strings.TrimSpace(item.Reason),
		Season:      item.Season,
		IsPaid:      item.IsPaid,
	}, `ON CONFLICT (recipient_id, reason, season)
DO UPDATE SET
    amount = EXCLUDED.amount
RETURNING *`)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("build upsert payout query: %w", err)
	}

	var row payoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return payout.Payout{}, fmt.Errorf("upsert payout reason=%s season=%d: %w", item.Reason, item.Season, err)
	}
	return row.toDomain(), nil
}

func (r *PayoutRepository) TogglePaid(ctx context.Context, payoutID int64) (payout.Payout, bool, error) {
	query, args, err := qb.Update("payouts").
		SetExpr("is_paid", "NOT is_paid").
		Where(qb.Eq("id", payoutID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return payout.Payout{}, false, fmt.Errorf("build toggle payout paid query: %w", err)
	}

	var row payoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return payout.Payout{}, false, nil
		}
		return payout.Payout{}, false, fmt.Errorf("toggle payout paid id=%d: %w", payoutID, err)
	}
	return row.toDomain(), true, nil
}
