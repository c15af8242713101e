package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
)

type UnitOfWork interface {
	RunAtomically(ctx context.Context, work func(ctx context.Context) error) error
}

// Notifier is told about every balance a committed mutation moved.
type Notifier interface {
	BalanceChanged(ctx context.Context, change BalanceChange)
}

// BalanceChange describes one write to an account's cached balance.
type BalanceChange struct {
	AccountID     uuid.UUID
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
	Delta         decimal.Decimal
	Balance       decimal.Decimal
}

// Service owns the transaction lifecycle and keeps account balances in step with it.
// Every mutation runs as a single unit of work.
type Service struct {
	repo     Repository
	accounts AccountRepository
	uow      UnitOfWork
	notifier Notifier
}

// NewService builds a Service. notifier may be nil.
func NewService(repo Repository, accounts AccountRepository, uow UnitOfWork, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		uow:      uow,
		notifier: notifier,
	}
}

type CreateParams struct {
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal
	Kind        Kind
	Description string
	Date        time.Time
	Recurrence  *Recurrence
	Attachments []string
}

// UpdateParams is a partial update; nil fields keep their current value.
type UpdateParams struct {
	AccountID   *uuid.UUID
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Kind        *Kind
	Description *string
	Date        *time.Time
	Recurrence  *Recurrence
	Attachments []string
}

type ListFilter struct {
	AccountID *uuid.UUID
	Kind      *Kind
	StartDate *time.Time
	EndDate   *time.Time
}

type DeleteResult struct {
	Success bool
}

func (s *Service) Get(ctx context.Context, id, ownerID uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ownerID, filter)
}

// Create records a transaction and applies its signed amount to the account balance.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Transaction, error) {
	var (
		created *Transaction
		changes []BalanceChange
	)

	err := s.uow.RunAtomically(ctx, func(ctx context.Context) error {
		changes = nil

		acc, err := s.resolveAccount(ctx, params.AccountID, ownerID)
		if err != nil {
			return err
		}

		tx := &Transaction{
			OwnerID:     ownerID,
			AccountID:   acc.ID,
			CategoryID:  params.CategoryID,
			Amount:      params.Amount.Round(account.MoneyScale),
			Kind:        params.Kind,
			Description: params.Description,
			Date:        params.Date,
			Recurrence:  params.Recurrence,
			Attachments: params.Attachments,
		}
		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return err
		}

		change, err := s.adjust(ctx, acc, tx.Signed(), tx.ID)
		if err != nil {
			return err
		}

		changes = appendChange(changes, change)
		created = tx

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, changes)

	return created, nil
}

// Update applies params to a transaction. When the amount, kind or account changes,
// the original effect is reversed on the original account and the new effect is
// applied to the target account, all inside the same unit.
func (s *Service) Update(ctx context.Context, id, ownerID uuid.UUID, params UpdateParams) (*Transaction, error) {
	var (
		updated *Transaction
		changes []BalanceChange
	)

	err := s.uow.RunAtomically(ctx, func(ctx context.Context) error {
		changes = nil

		orig, err := s.repo.GetTransaction(ctx, id, ownerID)
		if err != nil {
			return err
		}

		next := params.applyTo(*orig)

		if affectsBalance(orig, &next) {
			src, err := s.resolveAccount(ctx, orig.AccountID, ownerID)
			if err != nil {
				return err
			}

			change, err := s.adjust(ctx, src, orig.Signed().Neg(), orig.ID)
			if err != nil {
				return fmt.Errorf("reversing transaction %s: %w", orig.ID, err)
			}

			changes = appendChange(changes, change)

			dst := src
			if next.AccountID != orig.AccountID {
				if dst, err = s.resolveAccount(ctx, next.AccountID, ownerID); err != nil {
					return err
				}
			}

			change, err = s.adjust(ctx, dst, next.Signed(), next.ID)
			if err != nil {
				return fmt.Errorf("reapplying transaction %s: %w", next.ID, err)
			}

			changes = appendChange(changes, change)
		}

		if err := s.repo.UpdateTransaction(ctx, &next); err != nil {
			return err
		}

		updated = &next

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, changes)

	return updated, nil
}

// Delete reverses a transaction's effect on its account and removes it.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) (DeleteResult, error) {
	var changes []BalanceChange

	err := s.uow.RunAtomically(ctx, func(ctx context.Context) error {
		changes = nil

		orig, err := s.repo.GetTransaction(ctx, id, ownerID)
		if err != nil {
			return err
		}

		acc, err := s.resolveAccount(ctx, orig.AccountID, ownerID)
		if err != nil {
			return err
		}

		change, err := s.adjust(ctx, acc, orig.Signed().Neg(), orig.ID)
		if err != nil {
			return fmt.Errorf("reversing transaction %s: %w", orig.ID, err)
		}

		changes = appendChange(changes, change)

		return s.repo.DeleteTransaction(ctx, orig.ID, ownerID)
	})
	if err != nil {
		return DeleteResult{}, err
	}

	s.notify(ctx, changes)

	return DeleteResult{Success: true}, nil
}

func (s *Service) resolveAccount(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	acc, err := s.accounts.GetAccount(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}

		return nil, fmt.Errorf("resolving account %s: %w", id, err)
	}

	return acc, nil
}

// adjust writes acc.Balance+delta back and keeps acc in step with the stored row so
// that a second adjustment in the same unit sees the first. A zero delta writes nothing.
func (s *Service) adjust(ctx context.Context, acc *account.Account, delta decimal.Decimal, txID uuid.UUID) (*BalanceChange, error) {
	if delta.IsZero() {
		return nil, nil
	}

	balance := acc.Balance.Add(delta)
	if err := s.accounts.UpdateBalance(ctx, acc.ID, acc.OwnerID, balance, acc.Version); err != nil {
		return nil, err
	}

	acc.Balance = balance
	acc.Version++

	return &BalanceChange{
		AccountID:     acc.ID,
		OwnerID:       acc.OwnerID,
		TransactionID: txID,
		Delta:         delta,
		Balance:       balance,
	}, nil
}

func (s *Service) notify(ctx context.Context, changes []BalanceChange) {
	if s.notifier == nil {
		return
	}

	for _, c := range changes {
		s.notifier.BalanceChanged(ctx, c)
	}
}

func appendChange(changes []BalanceChange, c *BalanceChange) []BalanceChange {
	if c == nil {
		return changes
	}

	return append(changes, *c)
}

func (p UpdateParams) applyTo(tx Transaction) Transaction {
	if p.AccountID != nil {
		tx.AccountID = *p.AccountID
	}

	if p.CategoryID != nil {
		tx.CategoryID = p.CategoryID
	}

	if p.Amount != nil {
		tx.Amount = p.Amount.Round(account.MoneyScale)
	}

	if p.Kind != nil {
		tx.Kind = *p.Kind
	}

	if p.Description != nil {
		tx.Description = *p.Description
	}

	if p.Date != nil {
		tx.Date = *p.Date
	}

	if p.Recurrence != nil {
		tx.Recurrence = p.Recurrence
	}

	if p.Attachments != nil {
		tx.Attachments = p.Attachments
	}

	return tx
}

func affectsBalance(orig, next *Transaction) bool {
	return !orig.Amount.Equal(next.Amount) ||
		orig.Kind != next.Kind ||
		orig.AccountID != next.AccountID
}
