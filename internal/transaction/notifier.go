package transaction

import (
	"context"
	"log/slog"
)

// LogNotifier reports balance changes to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) BalanceChanged(ctx context.Context, c BalanceChange) {
	n.logger.InfoContext(ctx, "account balance changed",
		"account_id", c.AccountID,
		"transaction_id", c.TransactionID,
		"delta", c.Delta.String(),
		"balance", c.Balance.String(),
	)
}
