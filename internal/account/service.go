package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	RunAtomically(ctx context.Context, work func(ctx context.Context) error) error
}

type Service struct {
	repo Repository
	uow  UnitOfWork
}

func NewService(repo Repository, uow UnitOfWork) *Service {
	return &Service{repo: repo, uow: uow}
}

type CreateParams struct {
	Name           string
	Type           Type
	OpeningBalance decimal.Decimal
}

// UpdateParams carries the user-editable fields. It has no balance.
type UpdateParams struct {
	Name   *string
	Type   *Type
	Active *bool
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Account, error) {
	opening := params.OpeningBalance.Round(MoneyScale)

	acc := &Account{
		OwnerID:        ownerID,
		Name:           params.Name,
		Type:           params.Type,
		OpeningBalance: opening,
		Balance:        opening,
		Active:         true,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id, ownerID uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, id, ownerID uuid.UUID, params UpdateParams) (*Account, error) {
	acc, err := s.repo.GetAccount(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		acc.Name = *params.Name
	}

	if params.Type != nil {
		acc.Type = *params.Type
	}

	if params.Active != nil {
		acc.Active = *params.Active
	}

	if err := s.repo.UpdateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Delete removes the account unless a transaction still references it.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.uow.RunAtomically(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetAccount(ctx, id, ownerID); err != nil {
			return err
		}

		n, err := s.repo.CountTransactions(ctx, id)
		if err != nil {
			return fmt.Errorf("counting transactions: %w", err)
		}

		if n > 0 {
			return fmt.Errorf("%w: %d still reference it", ErrHasTransactions, n)
		}

		return s.repo.DeleteAccount(ctx, id, ownerID)
	})
}

// Reconcile recomputes the balance from the opening balance and the account's
// transactions and compares it with the cached value.
func (s *Service) Reconcile(ctx context.Context, id, ownerID uuid.UUID) (*Reconciliation, error) {
	var rec *Reconciliation

	err := s.uow.RunAtomically(ctx, func(ctx context.Context) error {
		acc, err := s.repo.GetAccount(ctx, id, ownerID)
		if err != nil {
			return err
		}

		sum, err := s.repo.SumSignedAmounts(ctx, id)
		if err != nil {
			return fmt.Errorf("summing transactions: %w", err)
		}

		expected := acc.OpeningBalance.Add(sum)
		rec = &Reconciliation{
			AccountID:  acc.ID,
			Balance:    acc.Balance,
			Expected:   expected,
			Drift:      acc.Balance.Sub(expected),
			Consistent: acc.Balance.Equal(expected),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}
