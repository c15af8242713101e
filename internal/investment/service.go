package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
)

type Service struct {
	repo     Repository
	accounts AccountRepository
	now      func() time.Time
}

// NewService builds a Service. A nil now uses time.Now.
func NewService(repo Repository, accounts AccountRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{repo: repo, accounts: accounts, now: now}
}

type CreateParams struct {
	AccountID       uuid.UUID
	Name            string
	InitialValue    decimal.Decimal
	CurrentValue    decimal.Decimal
	AcquisitionDate *time.Time
}

type UpdateParams struct {
	AccountID       *uuid.UUID
	Name            *string
	InitialValue    *decimal.Decimal
	CurrentValue    *decimal.Decimal
	AcquisitionDate *time.Time
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Investment, error) {
	if err := s.checkAccount(ctx, params.AccountID, ownerID); err != nil {
		return nil, err
	}

	inv := &Investment{
		OwnerID:         ownerID,
		AccountID:       params.AccountID,
		Name:            params.Name,
		InitialValue:    params.InitialValue,
		CurrentValue:    params.CurrentValue,
		AcquisitionDate: params.AcquisitionDate,
	}
	inv.Performance = Recompute(inv.InitialValue, inv.CurrentValue, inv.AcquisitionDate, s.now())

	if err := s.repo.CreateInvestment(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id, ownerID uuid.UUID) (*Investment, error) {
	return s.repo.GetInvestment(ctx, id, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Investment, error) {
	return s.repo.ListInvestments(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, id, ownerID uuid.UUID, params UpdateParams) (*Investment, error) {
	inv, err := s.repo.GetInvestment(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if params.AccountID != nil && *params.AccountID != inv.AccountID {
		if err := s.checkAccount(ctx, *params.AccountID, ownerID); err != nil {
			return nil, err
		}

		inv.AccountID = *params.AccountID
	}

	if params.Name != nil {
		inv.Name = *params.Name
	}

	if params.InitialValue != nil || params.CurrentValue != nil || params.AcquisitionDate != nil {
		if params.InitialValue != nil {
			inv.InitialValue = *params.InitialValue
		}

		if params.CurrentValue != nil {
			inv.CurrentValue = *params.CurrentValue
		}

		if params.AcquisitionDate != nil {
			inv.AcquisitionDate = params.AcquisitionDate
		}

		inv.Performance = Recompute(inv.InitialValue, inv.CurrentValue, inv.AcquisitionDate, s.now())
	}

	if err := s.repo.UpdateInvestment(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.repo.DeleteInvestment(ctx, id, ownerID)
}

func (s *Service) checkAccount(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, err := s.accounts.GetAccount(ctx, id, ownerID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}

		return fmt.Errorf("resolving account %s: %w", id, err)
	}

	return nil
}
