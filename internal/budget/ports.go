package budget

import (
	"context"

	"confronto/internal/core"
)

// Ports for outbound adapters.
type (
	// TransactionSource returns a full calendar year of raw transactions.
	// Implementations handle credentials and pagination; callers receive
	// every transaction for the year in one materialized slice.
	TransactionSource interface {
		ListTransactions(ctx context.Context, year int) ([]core.Transaction, error)
	}
)
