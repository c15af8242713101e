package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/finny-ledger/internal/http/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/auth"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/goal"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/investment"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/transaction"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func New(
	opts Options,
	accountsV1 *account.Handler,
	transactionsV1 *transaction.Handler,
	goalsV1 *goal.Handler,
	investmentsV1 *investment.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/accounts", accountsV1.Routes)
		r.Route("/transactions", transactionsV1.Routes)
		r.Route("/goals", goalsV1.Routes)
		r.Route("/investments", investmentsV1.Routes)
	})

	return router
}
