package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	finnyHttp "github.com/MrJamesThe3rd/finny-ledger/internal/http"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/goal"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/investment"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/transaction"
)

func newRouter() http.Handler {
	return finnyHttp.New(
		finnyHttp.Options{
			JWTSecret:      []byte("secret"),
			AllowedOrigins: []string{"https://app.example"},
		},
		account.NewHandler(nil),
		transaction.NewHandler(nil),
		goal.NewHandler(nil),
		investment.NewHandler(nil),
	)
}

func TestRouter_RequiresToken(t *testing.T) {
	router := newRouter()

	for _, path := range []string{"/api/v1/accounts", "/api/v1/transactions", "/api/v1/goals", "/api/v1/investments"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
