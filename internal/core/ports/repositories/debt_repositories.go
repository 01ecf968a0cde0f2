package repositories

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtReader defines read operations for debt data
type DebtReader interface {
	// FindDebtByID retrieves a debt with its client projections. Returns apperrors.ErrNotFound if absent.
	FindDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error)

	ExistsDebtByID(ctx context.Context, debtID int64) (bool, error)

	// ListDebts retrieves a page of debts matching the filter.
	ListDebts(ctx context.Context, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error)
}

// DebtAggregates defines the per-client aggregate queries over debts.
// Sums return zero when the client has no debts.
type DebtAggregates interface {
	CountDebtsByClient(ctx context.Context, clientID int64) (int64, error)
	CountSettledDebtsByClient(ctx context.Context, clientID int64) (int64, error)
	SumDebtAmountByClient(ctx context.Context, clientID int64) (decimal.Decimal, error)
	SumRemainingByClient(ctx context.Context, clientID int64) (decimal.Decimal, error)
}

// DebtWriter defines write operations for debt data
type DebtWriter interface {
	// SaveDebt persists a new debt and returns it with its assigned identifier.
	SaveDebt(ctx context.Context, debt domain.Debt) (*domain.Debt, error)

	// UpdateDebt stores the date, amounts and update timestamp of an existing debt.
	UpdateDebt(ctx context.Context, debt domain.Debt) error

	DeleteDebt(ctx context.Context, debtID int64) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtAggregates
	DebtWriter
}
