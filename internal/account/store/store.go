package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/uow"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order matches selectAccountColumns.
func scanAccount(s scanner) (*account.Account, error) {
	var acc account.Account

	var typeStr string

	if err := s.Scan(
		&acc.ID, &acc.OwnerID, &acc.Name, &typeStr, &acc.OpeningBalance, &acc.Balance,
		&acc.Active, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.Type = account.Type(typeStr)

	return &acc, nil
}

const selectAccountColumns = `
	id, owner_id, name, type, opening_balance, balance, active, version, created_at, updated_at
`

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (owner_id, name, type, opening_balance, balance, active, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW(), NOW())
		RETURNING id, version, created_at, updated_at
	`

	err := uow.Conn(ctx, s.db).QueryRowContext(ctx, query,
		acc.OwnerID,
		acc.Name,
		acc.Type,
		acc.OpeningBalance,
		acc.Balance,
		acc.Active,
	).Scan(&acc.ID, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE id = $1 AND owner_id = $2`

	acc, err := scanAccount(uow.Conn(ctx, s.db).QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

func (s *Store) ListAccounts(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at ASC`

	rows, err := uow.Conn(ctx, s.db).QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accs []*account.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accs = append(accs, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accs, nil
}

// UpdateAccount writes the user-editable fields. The balance column is never touched here.
func (s *Store) UpdateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, active = $3, updated_at = NOW()
		WHERE id = $4 AND owner_id = $5
	`

	res, err := uow.Conn(ctx, s.db).ExecContext(ctx, query,
		acc.Name,
		acc.Type,
		acc.Active,
		acc.ID,
		acc.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return expectOneRow(res, account.ErrNotFound)
}

// UpdateBalance writes a new balance if the row is still at version. A stale version
// yields uow.ErrConflict.
func (s *Store) UpdateBalance(ctx context.Context, id, ownerID uuid.UUID, balance decimal.Decimal, version int64) error {
	query := `
		UPDATE accounts
		SET balance = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3 AND version = $4
	`

	res, err := uow.Conn(ctx, s.db).ExecContext(ctx, query, balance, id, ownerID, version)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	if err := expectOneRow(res, uow.ErrConflict); err != nil {
		return fmt.Errorf("updating balance of account %s at version %d: %w", id, version, err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1 AND owner_id = $2`

	res, err := uow.Conn(ctx, s.db).ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return expectOneRow(res, account.ErrNotFound)
}

func (s *Store) CountTransactions(ctx context.Context, id uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE account_id = $1`

	var n int
	if err := uow.Conn(ctx, s.db).QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return n, nil
}

// SumSignedAmounts adds up income as positive and expense as negative. Investment
// transactions do not move the balance.
func (s *Store) SumSignedAmounts(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE kind
			WHEN 'income' THEN amount
			WHEN 'expense' THEN -amount
			ELSE 0
		END), 0)
		FROM transactions
		WHERE account_id = $1
	`

	var sum decimal.Decimal
	if err := uow.Conn(ctx, s.db).QueryRowContext(ctx, query, id).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("summing signed amounts: %w", err)
	}

	return sum, nil
}

func expectOneRow(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return errNone
	}

	return nil
}
