package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_ledger_app/internal/utils/accounting"
)

// ledger keeps the derived amounts of a debt in step with its payments.
// It must run inside the transaction that changed the payments or the debt amount.
type ledger struct {
	debtRepo    portsrepo.DebtWriter
	paymentRepo portsrepo.PaymentReader
}

func newLedger(debtRepo portsrepo.DebtWriter, paymentRepo portsrepo.PaymentReader) *ledger {
	return &ledger{debtRepo: debtRepo, paymentRepo: paymentRepo}
}

// recompute reloads the payments of debt, derives its paid and remaining amounts and stores them.
func (l *ledger) recompute(ctx context.Context, debt *domain.Debt) error {
	payments, err := l.paymentRepo.ListPaymentsByDebt(ctx, debt.DebtID)
	if err != nil {
		return fmt.Errorf("failed to load payments of debt %d: %w", debt.DebtID, err)
	}

	accounting.RecomputeBalance(debt, payments)
	debt.LastUpdatedAt = time.Now()

	if err := l.debtRepo.UpdateDebt(ctx, *debt); err != nil {
		return fmt.Errorf("failed to store balance of debt %d: %w", debt.DebtID, err)
	}
	return nil
}
