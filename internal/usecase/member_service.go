package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/member"
)

const maxPaymentInfoLength = 100

type UpdatePaymentInfoInput struct {
	PaymentInfo string `json:"payment_info" validate:"max=100"`
}

type MemberService struct {
	memberRepo member.Repository
}

func NewMemberService(memberRepo member.Repository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// ListMembers hides payment handles unless includePrivate is set.
func (s *MemberService) ListMembers(ctx context.Context, includePrivate bool) ([]member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.ListMembers")
	defer span.End()

	items, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if !includePrivate {
		for i := range items {
			items[i].PaymentInfo = ""
		}
	}
	return items, nil
}

func (s *MemberService) UpdatePaymentInfo(ctx context.Context, memberID int64, input UpdatePaymentInfoInput) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.UpdatePaymentInfo")
	defer span.End()

	if memberID <= 0 {
		return member.Member{}, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}
	info := strings.TrimSpace(input.PaymentInfo)
	if len(info) > maxPaymentInfoLength {
		return member.Member{}, fmt.Errorf("%w: payment info exceeds %d characters", ErrInvalidInput, maxPaymentInfoLength)
	}

	item, exists, err := s.memberRepo.UpdatePaymentInfo(ctx, memberID, info)
	if err != nil {
		return member.Member{}, fmt.Errorf("update payment info: %w", err)
	}
	if !exists {
		return member.Member{}, fmt.Errorf("%w: member=%d", ErrNotFound, memberID)
	}
	return item, nil
}

func (s *MemberService) ToggleDues(ctx context.Context, memberID int64) (member.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MemberService.ToggleDues")
	defer span.End()

	if memberID <= 0 {
		return member.Member{}, fmt.Errorf("%w: member id is required", ErrInvalidInput)
	}
	item, exists, err := s.memberRepo.ToggleDues(ctx, memberID)
	if err != nil {
		return member.Member{}, fmt.Errorf("toggle dues: %w", err)
	}
	if !exists {
		return member.Member{}, fmt.Errorf("%w: member=%d", ErrNotFound, memberID)
	}
	return item, nil
}
