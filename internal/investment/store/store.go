package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/investment"
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

func scanInvestment(s scanner) (*investment.Investment, error) {
	var inv investment.Investment

	var annualized decimal.NullDecimal

	if err := s.Scan(
		&inv.ID, &inv.OwnerID, &inv.AccountID, &inv.Name, &inv.InitialValue, &inv.CurrentValue,
		&inv.AcquisitionDate, &inv.Performance.AbsoluteReturn, &inv.Performance.PercentageReturn, &annualized,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if annualized.Valid {
		inv.Performance.AnnualizedReturn = &annualized.Decimal
	}

	return &inv, nil
}

const selectInvestmentColumns = `
	id, owner_id, account_id, name, initial_value, current_value, acquisition_date,
	absolute_return, percentage_return, annualized_return, created_at, updated_at
`

func annualizedArg(p investment.Performance) decimal.NullDecimal {
	if p.AnnualizedReturn == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *p.AnnualizedReturn, Valid: true}
}

func (s *Store) CreateInvestment(ctx context.Context, inv *investment.Investment) error {
	query := `
		INSERT INTO investments (
			owner_id, account_id, name, initial_value, current_value, acquisition_date,
			absolute_return, percentage_return, annualized_return, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.OwnerID,
		inv.AccountID,
		inv.Name,
		inv.InitialValue,
		inv.CurrentValue,
		inv.AcquisitionDate,
		inv.Performance.AbsoluteReturn,
		inv.Performance.PercentageReturn,
		annualizedArg(inv.Performance),
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating investment: %w", err)
	}

	return nil
}

func (s *Store) GetInvestment(ctx context.Context, id, ownerID uuid.UUID) (*investment.Investment, error) {
	query := `SELECT ` + selectInvestmentColumns + ` FROM investments WHERE id = $1 AND owner_id = $2`

	inv, err := scanInvestment(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, investment.ErrNotFound
		}

		return nil, fmt.Errorf("getting investment: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvestments(ctx context.Context, ownerID uuid.UUID) ([]*investment.Investment, error) {
	query := `SELECT ` + selectInvestmentColumns + `
		FROM investments
		WHERE owner_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}
	defer rows.Close()

	var invs []*investment.Investment

	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning investment: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating investment rows: %w", err)
	}

	return invs, nil
}

func (s *Store) UpdateInvestment(ctx context.Context, inv *investment.Investment) error {
	query := `
		UPDATE investments
		SET account_id = $1, name = $2, initial_value = $3, current_value = $4, acquisition_date = $5,
			absolute_return = $6, percentage_return = $7, annualized_return = $8, updated_at = NOW()
		WHERE id = $9 AND owner_id = $10
	`

	res, err := s.db.ExecContext(ctx, query,
		inv.AccountID,
		inv.Name,
		inv.InitialValue,
		inv.CurrentValue,
		inv.AcquisitionDate,
		inv.Performance.AbsoluteReturn,
		inv.Performance.PercentageReturn,
		annualizedArg(inv.Performance),
		inv.ID,
		inv.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating investment: %w", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	} else if n == 0 {
		return investment.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteInvestment(ctx context.Context, id, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM investments WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting investment: %w", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	} else if n == 0 {
		return investment.ErrNotFound
	}

	return nil
}
