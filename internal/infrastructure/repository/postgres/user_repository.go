package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/sleeper-league/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string, exceptUserID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("users").
		Where(
			qb.Eq("username", strings.TrimSpace(username)),
			qb.Expr("id <> ?", exceptUserID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build username taken query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count users by username: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Rename(ctx context.Context, userID int64, username string) error {
	query, args, err := qb.Update("users").
		Set("username", strings.TrimSpace(username)).
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build rename user query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("rename user id=%d: %w", userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected rename user: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rename user id=%d: not found", userID)
	}
	return nil
}
