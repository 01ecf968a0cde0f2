package repositories

import (
	"context"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTx runs fn inside one database transaction. Repository calls made with the
	// context passed to fn join that transaction. The transaction is committed when fn
	// returns nil and rolled back otherwise. Nested calls reuse the outer transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
