package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
	"github.com/SscSPs/debt_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PaymentService handles business logic related to payments. Every change to
// a payment recomputes the balance of its debt in the same transaction.
type PaymentService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	debtRepo    portsrepo.DebtRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	ledger      *ledger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	txManager portsrepo.TransactionManager,
	debtRepo portsrepo.DebtRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) *PaymentService {
	return &PaymentService{
		txManager:   txManager,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		ledger:      newLedger(debtRepo, paymentRepo),
	}
}

var _ portssvc.PaymentSvcFacade = (*PaymentService)(nil)

// AddPayment records a payment against a debt. The amount may not exceed what remains.
func (s *PaymentService) AddPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	var created *domain.Payment
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.addPayment(ctx, req.DebtID, req.Amount, req.PaymentDate)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add payment", slog.Int64("debt_id", req.DebtID), slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Payment added", slog.Int64("payment_id", created.PaymentID), slog.Int64("debt_id", created.DebtID))
	return created, nil
}

// PayInFull records a payment of exactly the remaining amount of the debt.
func (s *PaymentService) PayInFull(ctx context.Context, debtID int64, req dto.PayInFullRequest) (*domain.Payment, error) {
	var created *domain.Payment
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
		if err != nil {
			return err
		}
		amount, err := accounting.AmountToSettle(*debt)
		if err != nil {
			return err
		}
		created, err = s.addPayment(ctx, debtID, amount, req.PaymentDate)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to pay debt in full", slog.Int64("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt paid in full", slog.Int64("debt_id", debtID), slog.String("amount", created.Amount.String()))
	return created, nil
}

func (s *PaymentService) addPayment(ctx context.Context, debtID int64, amount decimal.Decimal, paymentDate string) (*domain.Payment, error) {
	now := time.Now()
	payment := domain.Payment{
		DebtID:      debtID,
		Amount:      amount,
		PaymentDate: paymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if err := accounting.ValidatePaymentAmount(*debt, amount, nil); err != nil {
		return nil, err
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.recompute(ctx, debt); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindPaymentByID(ctx, saved.PaymentID)
}

// UpdatePayment changes the amount and date of a payment. The amount it
// replaces is returned to the balance before the new amount is checked.
func (s *PaymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	var updated *domain.Payment
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}
		debt, err := s.debtRepo.FindDebtByID(ctx, payment.DebtID)
		if err != nil {
			return err
		}

		previous := payment.Amount
		payment.Amount = req.Amount
		payment.PaymentDate = req.PaymentDate
		payment.LastUpdatedAt = time.Now()
		if err := payment.Validate(); err != nil {
			return err
		}
		if err := accounting.ValidatePaymentAmount(*debt, req.Amount, &previous); err != nil {
			return err
		}

		if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
			return err
		}
		if err := s.ledger.recompute(ctx, debt); err != nil {
			return err
		}
		updated, err = s.paymentRepo.FindPaymentByID(ctx, paymentID)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update payment", slog.Int64("payment_id", paymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment updated", slog.Int64("payment_id", paymentID))
	return updated, nil
}

// DeletePayment removes a payment and gives its amount back to the debt.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
			return err
		}
		debt, err := s.debtRepo.FindDebtByID(ctx, payment.DebtID)
		if err != nil {
			return err
		}
		return s.ledger.recompute(ctx, debt)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete payment", slog.Int64("payment_id", paymentID))
		return err
	}

	s.LogInfo(ctx, "Payment deleted", slog.Int64("payment_id", paymentID))
	return nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *PaymentService) ListPayments(ctx context.Context, filter domain.PaymentFilter, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	return s.paymentRepo.ListPayments(ctx, filter, page)
}

func (s *PaymentService) ListPaymentsByDebt(ctx context.Context, debtID int64, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	if err := s.requireDebt(ctx, debtID); err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	return s.paymentRepo.ListPayments(ctx, domain.PaymentFilter{DebtID: &debtID}, page)
}

func (s *PaymentService) ListPaymentsByDebtOrdered(ctx context.Context, debtID int64) ([]domain.Payment, error) {
	if err := s.requireDebt(ctx, debtID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByDebt(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *PaymentService) SearchPaymentsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	if strings.TrimSpace(phone) == "" {
		return domain.Page[domain.Payment]{}, fmt.Errorf("%w: phone is required", apperrors.ErrValidation)
	}
	return s.paymentRepo.ListPayments(ctx, domain.PaymentFilter{Phone: phone}, page)
}

func (s *PaymentService) PaymentExists(ctx context.Context, paymentID int64) (bool, error) {
	return s.paymentRepo.ExistsPaymentByID(ctx, paymentID)
}

// TotalPaymentsForDebt returns the total paid against a debt, zero when nothing was paid.
func (s *PaymentService) TotalPaymentsForDebt(ctx context.Context, debtID int64) (decimal.Decimal, error) {
	return s.paymentRepo.SumPaymentsByDebt(ctx, debtID)
}

func (s *PaymentService) PaymentStatistics(ctx context.Context, debtID int64) (*domain.PaymentStatistics, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByDebt(ctx, debtID)
	if err != nil {
		return nil, err
	}

	stats := accounting.BuildPaymentStatistics(*debt, payments)
	return &stats, nil
}

func (s *PaymentService) requireDebt(ctx context.Context, debtID int64) error {
	exists, err := s.debtRepo.ExistsDebtByID(ctx, debtID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: debt %d", apperrors.ErrNotFound, debtID)
	}
	return nil
}
