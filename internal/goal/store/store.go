package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finny-ledger/internal/goal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	if err := s.Scan(
		&g.ID, &g.OwnerID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Progress, &g.IsCompleted,
		&g.TargetDate, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &g, nil
}

const selectGoalColumns = `
	id, owner_id, name, target_amount, current_amount, progress, is_completed,
	target_date, created_at, updated_at
`

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (owner_id, name, target_amount, current_amount, progress, is_completed, target_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.OwnerID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.Progress,
		g.IsCompleted,
		g.TargetDate,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id, ownerID uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE id = $1 AND owner_id = $2`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context, ownerID uuid.UUID) ([]*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM goals
		WHERE owner_id = $1
		ORDER BY target_date ASC NULLS LAST, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal rows: %w", err)
	}

	return goals, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, progress = $4, is_completed = $5,
			target_date = $6, updated_at = NOW()
		WHERE id = $7 AND owner_id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.Progress,
		g.IsCompleted,
		g.TargetDate,
		g.ID,
		g.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	} else if n == 0 {
		return goal.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	} else if n == 0 {
		return goal.ErrNotFound
	}

	return nil
}
