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

// DebtService handles business logic related to debts.
type DebtService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	clientRepo  portsrepo.ClientReader
	debtRepo    portsrepo.DebtRepositoryFacade
	paymentRepo portsrepo.PaymentReader
	ledger      *ledger
}

// NewDebtService creates a new DebtService.
func NewDebtService(
	txManager portsrepo.TransactionManager,
	clientRepo portsrepo.ClientReader,
	debtRepo portsrepo.DebtRepositoryFacade,
	paymentRepo portsrepo.PaymentReader,
) *DebtService {
	return &DebtService{
		txManager:   txManager,
		clientRepo:  clientRepo,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		ledger:      newLedger(debtRepo, paymentRepo),
	}
}

var _ portssvc.DebtSvcFacade = (*DebtService)(nil)

// AddDebt records a debt for an existing client. Nothing is paid yet, so the
// whole amount remains.
func (s *DebtService) AddDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	var created *domain.Debt
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.addDebt(ctx, req)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add debt", slog.Int64("client_id", req.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt added", slog.Int64("debt_id", created.DebtID), slog.Int64("client_id", created.ClientID))
	return created, nil
}

// AddDebtsBatch stores each debt in its own transaction, in input order.
// Debts stored before a failure stay stored and are returned with the error.
func (s *DebtService) AddDebtsBatch(ctx context.Context, reqs []dto.CreateDebtRequest) ([]domain.Debt, error) {
	s.LogDebug(ctx, "Adding debt batch", slog.Int("size", len(reqs)))
	created := make([]domain.Debt, 0, len(reqs))
	for i, req := range reqs {
		debt, err := s.AddDebt(ctx, req)
		if err != nil {
			s.LogFailure(ctx, err, "Debt batch stopped", slog.Int("position", i+1), slog.Int("stored", len(created)))
			return created, fmt.Errorf("debt %d of %d: %w", i+1, len(reqs), err)
		}
		created = append(created, *debt)
	}
	return created, nil
}

func (s *DebtService) addDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	now := time.Now()
	debt := domain.Debt{
		ClientID:        req.ClientID,
		Date:            req.Date,
		DebtAmount:      req.DebtAmount,
		PaidAmount:      decimal.Zero,
		RemainingAmount: req.DebtAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := debt.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.clientRepo.ExistsClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client %d: %w", req.ClientID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: client %d", apperrors.ErrNotFound, req.ClientID)
	}

	saved, err := s.debtRepo.SaveDebt(ctx, debt)
	if err != nil {
		return nil, err
	}
	return s.debtRepo.FindDebtByID(ctx, saved.DebtID)
}

// UpdateDebt changes the date and amount of a debt and recomputes its balance
// against the payments already recorded.
func (s *DebtService) UpdateDebt(ctx context.Context, debtID int64, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	var updated *domain.Debt
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
		if err != nil {
			return err
		}

		debt.Date = req.Date
		debt.DebtAmount = req.DebtAmount
		if err := debt.Validate(); err != nil {
			return err
		}

		if err := s.ledger.recompute(ctx, debt); err != nil {
			return err
		}
		updated = debt
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update debt", slog.Int64("debt_id", debtID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt updated", slog.Int64("debt_id", debtID), slog.String("remaining", updated.RemainingAmount.String()))
	return updated, nil
}

// DeleteDebt removes a debt that has no payments.
func (s *DebtService) DeleteDebt(ctx context.Context, debtID int64) error {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.debtRepo.ExistsDebtByID(ctx, debtID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: debt %d", apperrors.ErrNotFound, debtID)
		}

		payments, err := s.paymentRepo.CountPaymentsByDebt(ctx, debtID)
		if err != nil {
			return fmt.Errorf("failed to count payments of debt %d: %w", debtID, err)
		}
		if payments > 0 {
			return fmt.Errorf("%w: debt %d still has %d payment(s)", apperrors.ErrHasDependents, debtID, payments)
		}

		return s.debtRepo.DeleteDebt(ctx, debtID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete debt", slog.Int64("debt_id", debtID))
		return err
	}

	s.LogInfo(ctx, "Debt deleted", slog.Int64("debt_id", debtID))
	return nil
}

func (s *DebtService) GetDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error) {
	return s.debtRepo.FindDebtByID(ctx, debtID)
}

func (s *DebtService) ListDebts(ctx context.Context, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	return s.debtRepo.ListDebts(ctx, filter, page)
}

func (s *DebtService) ListDebtsByClient(ctx context.Context, clientID int64, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	exists, err := s.clientRepo.ExistsClientByID(ctx, clientID)
	if err != nil {
		return domain.Page[domain.Debt]{}, err
	}
	if !exists {
		return domain.Page[domain.Debt]{}, fmt.Errorf("%w: client %d", apperrors.ErrNotFound, clientID)
	}
	return s.debtRepo.ListDebts(ctx, domain.DebtFilter{ClientID: &clientID}, page)
}

func (s *DebtService) SearchDebtsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	if strings.TrimSpace(phone) == "" {
		return domain.Page[domain.Debt]{}, fmt.Errorf("%w: phone is required", apperrors.ErrValidation)
	}
	return s.debtRepo.ListDebts(ctx, domain.DebtFilter{Phone: phone}, page)
}

func (s *DebtService) ListUnpaidDebts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	status := domain.DebtOpen
	return s.debtRepo.ListDebts(ctx, domain.DebtFilter{Status: &status}, page)
}

func (s *DebtService) ListPaidDebts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	status := domain.DebtSettled
	return s.debtRepo.ListDebts(ctx, domain.DebtFilter{Status: &status}, page)
}

func (s *DebtService) DebtExists(ctx context.Context, debtID int64) (bool, error) {
	return s.debtRepo.ExistsDebtByID(ctx, debtID)
}

// TotalDebtForClient returns the sum of the debt amounts of a client, zero when it has none.
func (s *DebtService) TotalDebtForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return s.debtRepo.SumDebtAmountByClient(ctx, clientID)
}

// RemainingForClient returns what a client still owes across all of its debts.
func (s *DebtService) RemainingForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return s.debtRepo.SumRemainingByClient(ctx, clientID)
}

func (s *DebtService) ClientStatistics(ctx context.Context, clientID int64) (*domain.ClientDebtStatistics, error) {
	total, err := s.debtRepo.SumDebtAmountByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	remaining, err := s.debtRepo.SumRemainingByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	count, err := s.debtRepo.CountDebtsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	settled, err := s.debtRepo.CountSettledDebtsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	stats := accounting.BuildClientStatistics(total, remaining, count, settled)
	return &stats, nil
}
