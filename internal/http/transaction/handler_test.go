package transaction_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/auth"
	txhttp "github.com/MrJamesThe3rd/finny-ledger/internal/http/transaction"
	"github.com/MrJamesThe3rd/finny-ledger/internal/transaction"
	"github.com/MrJamesThe3rd/finny-ledger/internal/uow"
)

type inlineUnit struct{}

func (inlineUnit) RunAtomically(ctx context.Context, work func(ctx context.Context) error) error {
	return work(ctx)
}

type decimalEq decimal.Decimal

func (d decimalEq) Matches(x any) bool {
	v, ok := x.(decimal.Decimal)
	return ok && v.Equal(decimal.Decimal(d))
}

func (d decimalEq) String() string {
	return "is equal to " + decimal.Decimal(d).String()
}

type fixture struct {
	repo     *transaction.MockRepository
	accounts *transaction.MockAccountRepository
	router   chi.Router
	owner    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:     transaction.NewMockRepository(ctrl),
		accounts: transaction.NewMockAccountRepository(ctrl),
		router:   chi.NewRouter(),
		owner:    uuid.New(),
	}

	svc := transaction.NewService(f.repo, f.accounts, inlineUnit{}, nil)
	txhttp.NewHandler(svc).Routes(f.router)

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(auth.WithOwner(req.Context(), f.owner))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Create(t *testing.T) {
	f := newFixture(t)
	acc := &account.Account{ID: uuid.New(), OwnerID: f.owner, Balance: decimal.NewFromInt(1000)}

	f.accounts.EXPECT().GetAccount(gomock.Any(), acc.ID, f.owner).Return(acc, nil)
	f.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})
	f.accounts.EXPECT().
		UpdateBalance(gomock.Any(), acc.ID, f.owner, decimalEq(decimal.RequireFromString("949.50")), int64(0)).
		Return(nil)

	body := fmt.Sprintf(`{"account_id":%q,"amount":"50.50","kind":"expense","description":"Groceries","date":"2026-03-01T00:00:00Z"}`, acc.ID)
	rec := f.do(http.MethodPost, "/", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got struct {
		ID          uuid.UUID        `json:"id"`
		Amount      decimal.Decimal  `json:"amount"`
		Kind        transaction.Kind `json:"kind"`
		Attachments []string         `json:"attachments"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("50.50")))
	assert.Equal(t, transaction.KindExpense, got.Kind)
	assert.Empty(t, got.Attachments)
}

func TestHandler_Create_BadRequest(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name string
		body string
	}{
		{name: "MalformedJSON", body: `{"amount":`},
		{name: "MissingAccount", body: `{"amount":"10","kind":"income"}`},
		{name: "ZeroAmount", body: fmt.Sprintf(`{"account_id":%q,"amount":"0","kind":"income"}`, accountID)},
		{name: "NegativeAmount", body: fmt.Sprintf(`{"account_id":%q,"amount":"-5","kind":"income"}`, accountID)},
		{name: "UnknownKind", body: fmt.Sprintf(`{"account_id":%q,"amount":"5","kind":"gift"}`, accountID)},
		{
			name: "TooManyDecimals",
			body: fmt.Sprintf(`{"account_id":%q,"amount":"0.00005","kind":"expense","date":"2026-03-01T00:00:00Z"}`, accountID),
		},
		{name: "MissingDate", body: fmt.Sprintf(`{"account_id":%q,"amount":"5","kind":"income"}`, accountID)},
		{
			name: "UnknownFrequency",
			body: fmt.Sprintf(`{"account_id":%q,"amount":"5","kind":"income","recurrence":{"frequency":"hourly"}}`, accountID),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPost, "/", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_ErrorStatus(t *testing.T) {
	txID := uuid.New()
	accountID := uuid.New()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(f *fixture)
		wantStatus int
	}{
		{
			name:       "GetInvalidID",
			method:     http.MethodGet,
			target:     "/not-a-uuid",
			setup:      func(*fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "GetNotFound",
			method: http.MethodGet,
			target: "/" + txID.String(),
			setup: func(f *fixture) {
				f.repo.EXPECT().GetTransaction(gomock.Any(), txID, f.owner).Return(nil, transaction.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "CreateAccountNotFound",
			method: http.MethodPost,
			target: "/",
			body:   fmt.Sprintf(`{"account_id":%q,"amount":"5","kind":"income","date":"2026-03-01T00:00:00Z"}`, accountID),
			setup: func(f *fixture) {
				f.accounts.EXPECT().GetAccount(gomock.Any(), accountID, f.owner).Return(nil, account.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "UpdateTooManyDecimals",
			method:     http.MethodPatch,
			target:     "/" + txID.String(),
			body:       `{"amount":"1.23456"}`,
			setup:      func(*fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "UpdateConflict",
			method: http.MethodPatch,
			target: "/" + txID.String(),
			body:   `{"amount":"75"}`,
			setup: func(f *fixture) {
				acc := &account.Account{ID: accountID, OwnerID: f.owner, Balance: decimal.NewFromInt(100), Version: 3}
				f.repo.EXPECT().GetTransaction(gomock.Any(), txID, f.owner).Return(&transaction.Transaction{
					ID:        txID,
					OwnerID:   f.owner,
					AccountID: accountID,
					Amount:    decimal.NewFromInt(50),
					Kind:      transaction.KindIncome,
				}, nil)
				f.accounts.EXPECT().GetAccount(gomock.Any(), accountID, f.owner).Return(acc, nil)
				f.accounts.EXPECT().
					UpdateBalance(gomock.Any(), accountID, f.owner, gomock.Any(), int64(3)).
					Return(fmt.Errorf("account %s: %w", accountID, uow.ErrConflict))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "DeleteStoreFailure",
			method: http.MethodDelete,
			target: "/" + txID.String(),
			setup: func(f *fixture) {
				f.repo.EXPECT().GetTransaction(gomock.Any(), txID, f.owner).Return(nil, fmt.Errorf("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.do(tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	f := newFixture(t)
	txID := uuid.New()
	acc := &account.Account{ID: uuid.New(), OwnerID: f.owner, Balance: decimal.NewFromInt(300), Version: 1}

	f.repo.EXPECT().GetTransaction(gomock.Any(), txID, f.owner).Return(&transaction.Transaction{
		ID:        txID,
		OwnerID:   f.owner,
		AccountID: acc.ID,
		Amount:    decimal.NewFromInt(100),
		Kind:      transaction.KindIncome,
	}, nil)
	f.accounts.EXPECT().GetAccount(gomock.Any(), acc.ID, f.owner).Return(acc, nil)
	f.accounts.EXPECT().UpdateBalance(gomock.Any(), acc.ID, f.owner, decimalEq(decimal.NewFromInt(200)), int64(1)).Return(nil)
	f.repo.EXPECT().DeleteTransaction(gomock.Any(), txID, f.owner).Return(nil)

	rec := f.do(http.MethodDelete, "/"+txID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
