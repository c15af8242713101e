package transaction_test

import (
	"context"
	"maps"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/transaction"
	"github.com/MrJamesThe3rd/finny-ledger/internal/uow"
)

// memLedger is an in-memory account and transaction store whose units of work
// restore a snapshot when the work fails. Stored money is rounded to the column
// scale the way NUMERIC(20, 4) rounds it.
type memLedger struct {
	accounts map[uuid.UUID]account.Account
	txs      map[uuid.UUID]transaction.Transaction

	// failBalanceWrite, when set, is returned by UpdateBalance for the given account.
	failBalanceWrite map[uuid.UUID]error

	commits   int
	rollbacks int
}

func newMemLedger() *memLedger {
	return &memLedger{
		accounts:         make(map[uuid.UUID]account.Account),
		txs:              make(map[uuid.UUID]transaction.Transaction),
		failBalanceWrite: make(map[uuid.UUID]error),
	}
}

func (m *memLedger) addAccount(ownerID uuid.UUID, opening string) uuid.UUID {
	id := uuid.New()
	bal := decimal.RequireFromString(opening)
	m.accounts[id] = account.Account{
		ID:             id,
		OwnerID:        ownerID,
		Type:           account.TypeChecking,
		OpeningBalance: bal,
		Balance:        bal,
		Active:         true,
	}

	return id
}

func (m *memLedger) balance(id uuid.UUID) decimal.Decimal {
	return m.accounts[id].Balance
}

// requireConsistent checks balance == opening + Σ signed(t) for every account.
func (m *memLedger) requireConsistent(t *testing.T) {
	t.Helper()

	for id, acc := range m.accounts {
		expected := acc.OpeningBalance
		for _, tx := range m.txs {
			if tx.AccountID == id {
				expected = expected.Add(tx.Signed())
			}
		}

		require.Truef(t, acc.Balance.Equal(expected),
			"account %s: balance %s, expected %s", id, acc.Balance, expected)
	}
}

func (m *memLedger) RunAtomically(ctx context.Context, work func(ctx context.Context) error) error {
	accounts := maps.Clone(m.accounts)
	txs := maps.Clone(m.txs)

	if err := work(ctx); err != nil {
		m.accounts = accounts
		m.txs = txs
		m.rollbacks++

		return err
	}

	m.commits++

	return nil
}

func (m *memLedger) GetAccount(_ context.Context, id, ownerID uuid.UUID) (*account.Account, error) {
	acc, ok := m.accounts[id]
	if !ok || acc.OwnerID != ownerID {
		return nil, account.ErrNotFound
	}

	return &acc, nil
}

func (m *memLedger) UpdateBalance(_ context.Context, id, ownerID uuid.UUID, balance decimal.Decimal, version int64) error {
	if err := m.failBalanceWrite[id]; err != nil {
		return err
	}

	acc, ok := m.accounts[id]
	if !ok || acc.OwnerID != ownerID {
		return account.ErrNotFound
	}

	if acc.Version != version {
		return uow.ErrConflict
	}

	acc.Balance = balance.Round(account.MoneyScale)
	acc.Version++
	m.accounts[id] = acc

	return nil
}

func (m *memLedger) CreateTransaction(_ context.Context, tx *transaction.Transaction) error {
	tx.ID = uuid.New()
	m.txs[tx.ID] = stored(*tx)

	return nil
}

func (m *memLedger) GetTransaction(_ context.Context, id, ownerID uuid.UUID) (*transaction.Transaction, error) {
	tx, ok := m.txs[id]
	if !ok || tx.OwnerID != ownerID {
		return nil, transaction.ErrNotFound
	}

	return &tx, nil
}

func (m *memLedger) ListTransactions(_ context.Context, ownerID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	var out []*transaction.Transaction

	for _, tx := range m.txs {
		if tx.OwnerID != ownerID {
			continue
		}

		if filter.AccountID != nil && tx.AccountID != *filter.AccountID {
			continue
		}

		out = append(out, &tx)
	}

	return out, nil
}

func (m *memLedger) UpdateTransaction(_ context.Context, tx *transaction.Transaction) error {
	if _, ok := m.txs[tx.ID]; !ok {
		return transaction.ErrNotFound
	}

	m.txs[tx.ID] = stored(*tx)

	return nil
}

func stored(tx transaction.Transaction) transaction.Transaction {
	tx.Amount = tx.Amount.Round(account.MoneyScale)
	return tx
}

func (m *memLedger) DeleteTransaction(_ context.Context, id, ownerID uuid.UUID) error {
	tx, ok := m.txs[id]
	if !ok || tx.OwnerID != ownerID {
		return transaction.ErrNotFound
	}

	delete(m.txs, id)

	return nil
}

type recordingNotifier struct {
	changes []transaction.BalanceChange
}

func (r *recordingNotifier) BalanceChanged(_ context.Context, c transaction.BalanceChange) {
	r.changes = append(r.changes, c)
}
