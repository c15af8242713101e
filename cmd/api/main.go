package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
	accountStore "github.com/MrJamesThe3rd/finny-ledger/internal/account/store"
	"github.com/MrJamesThe3rd/finny-ledger/internal/config"
	"github.com/MrJamesThe3rd/finny-ledger/internal/database"
	"github.com/MrJamesThe3rd/finny-ledger/internal/goal"
	goalStore "github.com/MrJamesThe3rd/finny-ledger/internal/goal/store"
	finnyHttp "github.com/MrJamesThe3rd/finny-ledger/internal/http"
	accountHandler "github.com/MrJamesThe3rd/finny-ledger/internal/http/account"
	goalHandler "github.com/MrJamesThe3rd/finny-ledger/internal/http/goal"
	investmentHandler "github.com/MrJamesThe3rd/finny-ledger/internal/http/investment"
	txHandler "github.com/MrJamesThe3rd/finny-ledger/internal/http/transaction"
	"github.com/MrJamesThe3rd/finny-ledger/internal/investment"
	investmentStore "github.com/MrJamesThe3rd/finny-ledger/internal/investment/store"
	"github.com/MrJamesThe3rd/finny-ledger/internal/transaction"
	txStore "github.com/MrJamesThe3rd/finny-ledger/internal/transaction/store"
	"github.com/MrJamesThe3rd/finny-ledger/internal/uow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to apply schema", "error", err)
			os.Exit(1)
		}
	}

	var (
		accounts    = accountStore.New(db)
		coordinator = uow.New(db, uow.Options{
			MaxAttempts: cfg.Ledger.MaxAttempts,
			Backoff:     cfg.Ledger.RetryBackoff,
		})
	)

	var (
		accountService     = account.NewService(accounts, coordinator)
		transactionService = transaction.NewService(txStore.New(db), accounts, coordinator, transaction.NewLogNotifier(slog.Default()))
		goalService        = goal.NewService(goalStore.New(db))
		investmentService  = investment.NewService(investmentStore.New(db), accounts, nil)
	)

	router := finnyHttp.New(
		finnyHttp.Options{
			JWTSecret:      []byte(cfg.Auth.JWTSecret),
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		accountHandler.NewHandler(accountService),
		txHandler.NewHandler(transactionService),
		goalHandler.NewHandler(goalService),
		investmentHandler.NewHandler(investmentService),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
