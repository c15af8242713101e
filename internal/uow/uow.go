// Package uow groups a sequence of storage writes into one all-or-nothing unit.
//
// The active *sql.Tx travels in the context handed to the work function, so stores
// join the unit by resolving their querier through Conn.
package uow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConflict is returned when a concurrent write invalidated the unit.
	ErrConflict = errors.New("concurrent write conflict")

	// ErrNested is returned when RunAtomically is called from inside a unit.
	ErrNested = errors.New("nested unit of work")
)

// Postgres SQLSTATE codes that mean the unit lost a race and may be re-run.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// Conn returns the transaction of the unit active in ctx, or fallback when there is none.
func Conn(ctx context.Context, fallback Querier) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return fallback
}

// InUnit reports whether ctx belongs to an active unit.
func InUnit(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}

type Options struct {
	// MaxAttempts bounds how many times a conflicting unit is run. Values below 1 mean 1.
	MaxAttempts int
	// Backoff is the wait before the second attempt; it doubles on each further attempt.
	Backoff time.Duration
	// TxOptions is passed to BeginTx.
	TxOptions *sql.TxOptions
}

type Coordinator struct {
	db   *sql.DB
	opts Options
}

func New(db *sql.DB, opts Options) *Coordinator {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	return &Coordinator{db: db, opts: opts}
}

// RunAtomically runs work inside a single database transaction. The transaction is
// committed when work returns nil and rolled back otherwise; the error from work is
// returned unchanged. Units that fail with a conflict are re-run up to MaxAttempts times.
func (c *Coordinator) RunAtomically(ctx context.Context, work func(ctx context.Context) error) error {
	if InUnit(ctx) {
		return ErrNested
	}

	backoff := c.opts.Backoff

	var err error

	for attempt := 1; attempt <= c.opts.MaxAttempts; attempt++ {
		err = c.runOnce(ctx, work)
		if err == nil || !IsConflict(err) {
			return err
		}

		if attempt == c.opts.MaxAttempts {
			break
		}

		slog.Warn("unit of work conflicted, retrying", "attempt", attempt, "error", err)

		if serr := sleep(ctx, backoff); serr != nil {
			return fmt.Errorf("%w: %w", asConflict(err), serr)
		}

		backoff *= 2
	}

	return asConflict(err)
}

// asConflict makes sure err matches ErrConflict while keeping its own chain.
func asConflict(err error) error {
	if errors.Is(err, ErrConflict) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrConflict, err)
}

func (c *Coordinator) runOnce(ctx context.Context, work func(ctx context.Context) error) (err error) {
	tx, err := c.db.BeginTx(ctx, c.opts.TxOptions)
	if err != nil {
		return fmt.Errorf("beginning unit of work: %w", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("failed to roll back unit of work", "error", rbErr)
		}
	}()

	if err := work(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing unit of work: %w", err)
	}

	committed = true

	return nil
}

// IsConflict reports whether err means the unit raced another writer and can be re-run.
func IsConflict(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
	}

	return false
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
