package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("goal not found")

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id, ownerID uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, id, ownerID uuid.UUID) error
}
