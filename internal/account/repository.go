package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("account not found")

	// ErrHasTransactions is returned when deleting an account that transactions still reference.
	ErrHasTransactions = errors.New("account has transactions")
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id, ownerID uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, ownerID uuid.UUID) ([]*Account, error)
	UpdateAccount(ctx context.Context, acc *Account) error
	UpdateBalance(ctx context.Context, id, ownerID uuid.UUID, balance decimal.Decimal, version int64) error
	DeleteAccount(ctx context.Context, id, ownerID uuid.UUID) error

	CountTransactions(ctx context.Context, id uuid.UUID) (int, error)
	SumSignedAmounts(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}
