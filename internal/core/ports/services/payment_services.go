package services

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment. Returns apperrors.ErrNotFound if absent.
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	ListPayments(ctx context.Context, filter domain.PaymentFilter, page domain.PageRequest) (domain.Page[domain.Payment], error)

	// ListPaymentsByDebt retrieves a page of the payments of an existing debt.
	ListPaymentsByDebt(ctx context.Context, debtID int64, page domain.PageRequest) (domain.Page[domain.Payment], error)

	// ListPaymentsByDebtOrdered retrieves every payment of an existing debt, newest first.
	ListPaymentsByDebtOrdered(ctx context.Context, debtID int64) ([]domain.Payment, error)

	SearchPaymentsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Payment], error)

	PaymentExists(ctx context.Context, paymentID int64) (bool, error)
}

// PaymentAggregatesSvc defines totals and statistics over the payments of a debt
type PaymentAggregatesSvc interface {
	TotalPaymentsForDebt(ctx context.Context, debtID int64) (decimal.Decimal, error)
	PaymentStatistics(ctx context.Context, debtID int64) (*domain.PaymentStatistics, error)
}

// PaymentWriterSvc defines write operations for payment data.
// Every write recomputes the balance of the affected debt in the same transaction.
type PaymentWriterSvc interface {
	AddPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error

	// PayInFull records a payment of exactly the remaining amount of the debt.
	PayInFull(ctx context.Context, debtID int64, req dto.PayInFullRequest) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentAggregatesSvc
	PaymentWriterSvc
}
