package investment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
)

var (
	ErrNotFound = errors.New("investment not found")

	// ErrAccountNotFound is returned when the holding account is missing or owned by someone else.
	ErrAccountNotFound = errors.New("holding account not found")
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=investment
type Repository interface {
	CreateInvestment(ctx context.Context, inv *Investment) error
	GetInvestment(ctx context.Context, id, ownerID uuid.UUID) (*Investment, error)
	ListInvestments(ctx context.Context, ownerID uuid.UUID) ([]*Investment, error)
	UpdateInvestment(ctx context.Context, inv *Investment) error
	DeleteInvestment(ctx context.Context, id, ownerID uuid.UUID) error
}

type AccountRepository interface {
	GetAccount(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error)
}
