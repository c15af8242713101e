package store_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finny-ledger/internal/investment"
	"github.com/MrJamesThe3rd/finny-ledger/internal/investment/store"
)

var columns = []string{
	"id", "owner_id", "account_id", "name", "initial_value", "current_value", "acquisition_date",
	"absolute_return", "percentage_return", "annualized_return", "created_at", "updated_at",
}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_GetInvestment_Annualized(t *testing.T) {
	tests := []struct {
		name   string
		stored driver.Value
		want   *decimal.Decimal
	}{
		{name: "Present", stored: "12.50000000", want: new(decimal.RequireFromString("12.5"))},
		{name: "Null", stored: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			id, owner, accID := uuid.New(), uuid.New(), uuid.New()
			created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

			mock.ExpectQuery("FROM investments").
				WithArgs(id, owner).
				WillReturnRows(sqlmock.NewRows(columns).AddRow(
					id.String(), owner.String(), accID.String(), "Index fund", "1000", "1250", created,
					"250", "25", tt.stored, created, nil,
				))

			inv, err := s.GetInvestment(context.Background(), id, owner)
			require.NoError(t, err)

			assert.Equal(t, accID, inv.AccountID)
			assert.True(t, inv.Performance.PercentageReturn.Equal(decimal.NewFromInt(25)))

			if tt.want == nil {
				assert.Nil(t, inv.Performance.AnnualizedReturn)
				return
			}

			require.NotNil(t, inv.Performance.AnnualizedReturn)
			assert.True(t, tt.want.Equal(*inv.Performance.AnnualizedReturn))
		})
	}
}

func TestStore_GetInvestment_NotFound(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery("FROM investments").WillReturnRows(sqlmock.NewRows(columns))

	_, err := s.GetInvestment(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, investment.ErrNotFound)
}

func TestStore_CreateInvestment_AnnualizedArg(t *testing.T) {
	tests := []struct {
		name       string
		annualized *decimal.Decimal
		wantArg    driver.Value
	}{
		{name: "Computed", annualized: new(decimal.RequireFromString("7.25")), wantArg: "7.25"},
		{name: "NotComputable", wantArg: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newStore(t)

			inv := &investment.Investment{
				OwnerID:      uuid.New(),
				AccountID:    uuid.New(),
				Name:         "Bonds",
				InitialValue: decimal.NewFromInt(100),
				CurrentValue: decimal.NewFromInt(110),
				Performance: investment.Performance{
					AbsoluteReturn:   decimal.NewFromInt(10),
					PercentageReturn: decimal.NewFromInt(10),
					AnnualizedReturn: tt.annualized,
				},
			}
			newID := uuid.New()
			now := time.Now()

			mock.ExpectQuery("INSERT INTO investments").
				WithArgs(inv.OwnerID, inv.AccountID, "Bonds", "100", "110", nil, "10", "10", tt.wantArg).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))

			require.NoError(t, s.CreateInvestment(context.Background(), inv))
			assert.Equal(t, newID, inv.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_DeleteInvestment_NotFound(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectExec("DELETE FROM investments").WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteInvestment(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, investment.ErrNotFound)
}
