package member

import "context"

// Repository describes member persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, memberID int64) (Member, bool, error)
	GetBySleeperID(ctx context.Context, sleeperID string) (Member, bool, error)
	// Create inserts the login identity and the member atomically.
	Create(ctx context.Context, input NewMember) (Member, error)
	UpdateFullName(ctx context.Context, memberID int64, fullName string) error
	UpdatePaymentInfo(ctx context.Context, memberID int64, paymentInfo string) (Member, bool, error)
	ToggleDues(ctx context.Context, memberID int64) (Member, bool, error)
}
