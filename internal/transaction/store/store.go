package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finny-ledger/internal/transaction"
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

// scanTransaction reads a transaction row from the scanner and returns a populated Transaction.
// Expected column order: id, owner_id, account_id, category_id, amount, kind, description, date,
// recurrence_frequency, recurrence_until, attachments, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var kindStr string

	var frequency sql.NullString

	var until sql.NullTime

	var attachments []byte

	if err := s.Scan(
		&tx.ID, &tx.OwnerID, &tx.AccountID, &tx.CategoryID, &tx.Amount, &kindStr, &tx.Description, &tx.Date,
		&frequency, &until, &attachments,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = transaction.Kind(kindStr)

	if frequency.Valid {
		tx.Recurrence = &transaction.Recurrence{Frequency: transaction.Frequency(frequency.String)}
		if until.Valid {
			tx.Recurrence.Until = &until.Time
		}
	}

	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &tx.Attachments); err != nil {
			return nil, fmt.Errorf("decoding attachments: %w", err)
		}
	}

	return &tx, nil
}

const selectTransactionColumns = `
	id, owner_id, account_id, category_id, amount, kind, description, date,
	recurrence_frequency, recurrence_until, attachments, created_at, updated_at
`

func recurrenceArgs(r *transaction.Recurrence) (any, any) {
	if r == nil {
		return nil, nil
	}

	if r.Until == nil {
		return string(r.Frequency), nil
	}

	return string(r.Frequency), *r.Until
}

func attachmentsArg(attachments []string) (string, error) {
	if attachments == nil {
		attachments = []string{}
	}

	b, err := json.Marshal(attachments)
	if err != nil {
		return "", fmt.Errorf("encoding attachments: %w", err)
	}

	return string(b), nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (
			owner_id, account_id, category_id, amount, kind, description, date,
			recurrence_frequency, recurrence_until, attachments, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	frequency, until := recurrenceArgs(tx.Recurrence)

	attachments, err := attachmentsArg(tx.Attachments)
	if err != nil {
		return err
	}

	err = uow.Conn(ctx, s.db).QueryRowContext(ctx, query,
		tx.OwnerID,
		tx.AccountID,
		tx.CategoryID,
		tx.Amount,
		tx.Kind,
		tx.Description,
		tx.Date,
		frequency,
		until,
		attachments,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id, ownerID uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1 AND owner_id = $2`

	tx, err := scanTransaction(uow.Conn(ctx, s.db).QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE owner_id = $1`

	args := []any{ownerID}

	argIdx := 2

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := uow.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $1, category_id = $2, amount = $3, kind = $4, description = $5, date = $6,
			recurrence_frequency = $7, recurrence_until = $8, attachments = $9, updated_at = NOW()
		WHERE id = $10 AND owner_id = $11
		RETURNING updated_at
	`

	frequency, until := recurrenceArgs(tx.Recurrence)

	attachments, err := attachmentsArg(tx.Attachments)
	if err != nil {
		return err
	}

	err = uow.Conn(ctx, s.db).QueryRowContext(ctx, query,
		tx.AccountID,
		tx.CategoryID,
		tx.Amount,
		tx.Kind,
		tx.Description,
		tx.Date,
		frequency,
		until,
		attachments,
		tx.ID,
		tx.OwnerID,
	).Scan(&tx.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transaction.ErrNotFound
		}

		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND owner_id = $2`

	res, err := uow.Conn(ctx, s.db).ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
