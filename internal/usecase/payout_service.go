package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
)

type CreatePayoutInput struct {
	RecipientID int64   `json:"recipient_id" validate:"required,gt=0"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Reason      string  `json:"reason" validate:"required,max=255"`
	Season      int     `json:"season" validate:"required,gte=2017,lte=2100"`
}

type PayoutService struct {
	payoutRepo payout.Repository
	memberRepo member.Repository
}

func NewPayoutService(payoutRepo payout.Repository, memberRepo member.Repository) *PayoutService {
	return &PayoutService{
		payoutRepo: payoutRepo,
		memberRepo: memberRepo,
	}
}

func (s *PayoutService) ListPayouts(ctx context.Context, filter payout.Filter) ([]payout.Payout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PayoutService.ListPayouts")
	defer span.End()

	if filter.Season < 0 || filter.RecipientID < 0 {
		return nil, fmt.Errorf("%w: filters must be positive", ErrInvalidInput)
	}
	items, err := s.payoutRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	return items, nil
}

// CreatePayout records a payout; an existing one with the same recipient,
// reason and season gets its amount refreshed.
func (s *PayoutService) CreatePayout(ctx context.Context, input CreatePayoutInput) (payout.Payout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PayoutService.CreatePayout")
	defer span.End()

	recipient := input.RecipientID
	item := payout.Payout{
		RecipientID: &recipient,
		Amount:      input.Amount,
		Reason:      strings.TrimSpace(input.Reason),
		Season:      input.Season,
	}
	if err := item.Validate(); err != nil {
		return payout.Payout{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.memberRepo.GetByID(ctx, recipient)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("get payout recipient: %w", err)
	}
	if !exists {
		return payout.Payout{}, fmt.Errorf("%w: member=%d", ErrNotFound, recipient)
	}

	created, err := s.payoutRepo.Upsert(ctx, item)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("upsert payout: %w", err)
	}
	return created, nil
}

func (s *PayoutService) TogglePaid(ctx context.Context, payoutID int64) (payout.Payout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PayoutService.TogglePaid")
	defer span.End()

	if payoutID <= 0 {
		return payout.Payout{}, fmt.Errorf("%w: payout id is required", ErrInvalidInput)
	}
	item, exists, err := s.payoutRepo.TogglePaid(ctx, payoutID)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("toggle payout paid: %w", err)
	}
	if !exists {
		return payout.Payout{}, fmt.Errorf("%w: payout=%d", ErrNotFound, payoutID)
	}
	return item, nil
}
