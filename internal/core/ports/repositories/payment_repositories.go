package repositories

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment with its debt and client projections. Returns apperrors.ErrNotFound if absent.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	ExistsPaymentByID(ctx context.Context, paymentID int64) (bool, error)

	// ListPayments retrieves a page of payments matching the filter.
	ListPayments(ctx context.Context, filter domain.PaymentFilter, page domain.PageRequest) (domain.Page[domain.Payment], error)

	// ListPaymentsByDebt retrieves every payment of a debt, newest first.
	ListPaymentsByDebt(ctx context.Context, debtID int64) ([]domain.Payment, error)

	CountPaymentsByDebt(ctx context.Context, debtID int64) (int64, error)

	// SumPaymentsByDebt returns the total paid against a debt, zero when there are no payments.
	SumPaymentsByDebt(ctx context.Context, debtID int64) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment and returns it with its assigned identifier.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// UpdatePayment stores the amount, payment date and update timestamp of an existing payment.
	// The creation timestamp is never changed.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
