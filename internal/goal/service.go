package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
}

type UpdateParams struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Goal, error) {
	g := &Goal{
		OwnerID:       ownerID,
		Name:          params.Name,
		TargetAmount:  params.TargetAmount,
		CurrentAmount: params.CurrentAmount,
		TargetDate:    params.TargetDate,
	}
	Recompute(g.TargetAmount, g.CurrentAmount).apply(g)

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Get(ctx context.Context, id, ownerID uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, id, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, ownerID)
}

// Update applies params and, when an amount is part of the write, recomputes progress
// before persisting.
func (s *Service) Update(ctx context.Context, id, ownerID uuid.UUID, params UpdateParams) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		g.Name = *params.Name
	}

	if params.TargetDate != nil {
		g.TargetDate = params.TargetDate
	}

	if params.TargetAmount != nil || params.CurrentAmount != nil {
		if params.TargetAmount != nil {
			g.TargetAmount = *params.TargetAmount
		}

		if params.CurrentAmount != nil {
			g.CurrentAmount = *params.CurrentAmount
		}

		Recompute(g.TargetAmount, g.CurrentAmount).apply(g)
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, id, ownerID)
}
