package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
)

var (
	ErrNotFound = errors.New("transaction not found")

	// ErrAccountNotFound is returned when the referenced account is missing or owned by someone else.
	ErrAccountNotFound = errors.New("referenced account not found")
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id, ownerID uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id, ownerID uuid.UUID) error
}

// AccountRepository is the slice of the account store the ledger needs.
type AccountRepository interface {
	GetAccount(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error)
	UpdateBalance(ctx context.Context, id, ownerID uuid.UUID, balance decimal.Decimal, version int64) error
}
