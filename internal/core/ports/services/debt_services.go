package services

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// DebtReaderSvc defines read operations for debt data
type DebtReaderSvc interface {
	// GetDebtByID retrieves a debt. Returns apperrors.ErrNotFound if absent.
	GetDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error)

	ListDebts(ctx context.Context, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error)

	// ListDebtsByClient retrieves a page of the debts of an existing client.
	ListDebtsByClient(ctx context.Context, clientID int64, page domain.PageRequest) (domain.Page[domain.Debt], error)

	SearchDebtsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Debt], error)

	// ListUnpaidDebts retrieves debts with something left to pay.
	ListUnpaidDebts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error)

	// ListPaidDebts retrieves settled debts.
	ListPaidDebts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error)

	DebtExists(ctx context.Context, debtID int64) (bool, error)
}

// DebtAggregatesSvc defines the per-client totals over debts
type DebtAggregatesSvc interface {
	TotalDebtForClient(ctx context.Context, clientID int64) (decimal.Decimal, error)
	RemainingForClient(ctx context.Context, clientID int64) (decimal.Decimal, error)
	ClientStatistics(ctx context.Context, clientID int64) (*domain.ClientDebtStatistics, error)
}

// DebtWriterSvc defines write operations for debt data
type DebtWriterSvc interface {
	// AddDebt records a new debt for an existing client with nothing paid yet.
	AddDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)

	// AddDebtsBatch records each debt in its own transaction, in order.
	// It stops at the first failure and returns the debts stored before it together with the error.
	AddDebtsBatch(ctx context.Context, reqs []dto.CreateDebtRequest) ([]domain.Debt, error)

	// UpdateDebt changes the date and amount of a debt and recomputes its balance.
	UpdateDebt(ctx context.Context, debtID int64, req dto.UpdateDebtRequest) (*domain.Debt, error)

	// DeleteDebt removes a debt that has no payments.
	DeleteDebt(ctx context.Context, debtID int64) error
}

// DebtSvcFacade combines all debt-related service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtAggregatesSvc
	DebtWriterSvc
}
