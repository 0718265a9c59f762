package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type MemberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	query, args, err := qb.Select(memberSelectColumns).From(memberFromJoin).
		OrderBy("m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select members query: %w", err)
	}

	var rows []memberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select members: %w", err)
	}

	out := make([]member.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, memberID int64) (member.Member, bool, error) {
	return r.getOne(ctx, r.db, "get member by id", qb.Eq("m.id", memberID))
}

func (r *MemberRepository) GetBySleeperID(ctx context.Context, sleeperID string) (member.Member, bool, error) {
	return r.getOne(ctx, r.db, "get member by sleeper id", qb.Eq("m.sleeper_id", sleeperID))
}

func (r *MemberRepository) getOne(ctx context.Context, q sqlx.QueryerContext, op string, cond qb.Condition) (member.Member, bool, error) {
	query, args, err := qb.Select(memberSelectColumns).From(memberFromJoin).
		Where(cond).
		ToSQL()
	if err != nil {
		return member.Member{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row memberTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return member.Member{}, false, nil
		}
		return member.Member{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *MemberRepository) Create(ctx context.Context, input member.NewMember) (member.Member, error) {
	if err := input.Validate(); err != nil {
		return member.Member{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return member.Member{}, fmt.Errorf("begin tx create member: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userQuery, userArgs, err := qb.InsertModel("users", userInsertModel{
		Username: strings.TrimSpace(input.Username),
	}, "RETURNING id")
	if err != nil {
		return member.Member{}, fmt.Errorf("build create user query: %w", err)
	}
	var userID int64
	if err := tx.GetContext(ctx, &userID, userQuery, userArgs...); err != nil {
		return member.Member{}, fmt.Errorf("create user username=%s: %w", input.Username, err)
	}

	memberQuery, memberArgs, err := qb.InsertModel("members", memberInsertModel{
		UserID:    userID,
		FullName:  strings.TrimSpace(input.FullName),
		SleeperID: strings.TrimSpace(input.SleeperID),
	}, "RETURNING id")
	if err != nil {
		return member.Member{}, fmt.Errorf("build create member query: %w", err)
	}
	var memberID int64
	if err := tx.GetContext(ctx, &memberID, memberQuery, memberArgs...); err != nil {
		return member.Member{}, fmt.Errorf("create member sleeper_id=%s: %w", input.SleeperID, err)
	}

	created, ok, err := r.getOne(ctx, tx, "reload created member", qb.Eq("m.id", memberID))
	if err != nil {
		return member.Member{}, err
	}
	if !ok {
		return member.Member{}, fmt.Errorf("reload created member id=%d: not found", memberID)
	}

	if err := tx.Commit(); err != nil {
		return member.Member{}, fmt.Errorf("commit create member tx: %w", err)
	}
	return created, nil
}

func (r *MemberRepository) UpdateFullName(ctx context.Context, memberID int64, fullName string) error {
	query, args, err := qb.Update("members").
		Set("full_name", strings.TrimSpace(fullName)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", memberID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update member full name query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update member full name id=%d: %w", memberID, err)
	}
	return nil
}

func (r *MemberRepository) UpdatePaymentInfo(ctx context.Context, memberID int64, paymentInfo string) (member.Member, bool, error) {
	query, args, err := qb.Update("members").
		Set("payment_info", strings.TrimSpace(paymentInfo)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", memberID)).
		ToSQL()
	if err != nil {
		return member.Member{}, false, fmt.Errorf("build update member payment info query: %w", err)
	}
	return r.execAndReload(ctx, "update member payment info", memberID, query, args)
}

func (r *MemberRepository) ToggleDues(ctx context.Context, memberID int64) (member.Member, bool, error) {
	query, args, err := qb.Update("members").
		SetExpr("has_paid_dues", "NOT has_paid_dues").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", memberID)).
		ToSQL()
	if err != nil {
		return member.Member{}, false, fmt.Errorf("build toggle member dues query: %w", err)
	}
	return r.execAndReload(ctx, "toggle member dues", memberID, query, args)
}

func (r *MemberRepository) execAndReload(ctx context.Context, op string, memberID int64, query string, args []any) (member.Member, bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return member.Member{}, false, fmt.Errorf("%s id=%d: %w", op, memberID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return member.Member{}, false, fmt.Errorf("rows affected %s: %w", op, err)
	}
	if affected == 0 {
		return member.Member{}, false, nil
	}
	return r.GetByID(ctx, memberID)
}
