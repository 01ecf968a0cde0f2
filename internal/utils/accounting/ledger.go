package accounting

import (
	"fmt"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SumPayments returns the exact sum of the payment amounts.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RecomputeBalance derives PaidAmount and RemainingAmount of the debt from the full set of its payments.
// It must be called after every change to the payments of a debt and after any change to its DebtAmount.
func RecomputeBalance(debt *domain.Debt, payments []domain.Payment) {
	paid := SumPayments(payments)
	debt.PaidAmount = paid
	debt.RemainingAmount = debt.DebtAmount.Sub(paid)
}

// ValidatePaymentAmount checks a candidate payment amount against the balance of the debt.
// previous is nil when a new payment is being added. When an existing payment is edited it holds
// the amount currently recorded, which is backed out of the balance before the candidate is checked.
func ValidatePaymentAmount(debt domain.Debt, candidate decimal.Decimal, previous *decimal.Decimal) error {
	if candidate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrInvalidAmount, candidate.String())
	}

	available := debt.RemainingAmount
	if previous != nil {
		available = available.Add(*previous)
	}
	if candidate.GreaterThan(available) {
		return fmt.Errorf("%w: payment of %s exceeds the remaining amount %s of debt %d",
			apperrors.ErrExceedsRemaining, candidate.StringFixed(2), available.StringFixed(2), debt.DebtID)
	}
	return nil
}

// AmountToSettle returns the amount that pays the debt in full.
func AmountToSettle(debt domain.Debt) (decimal.Decimal, error) {
	if debt.IsSettled() {
		return decimal.Zero, fmt.Errorf("%w: debt %d has nothing left to pay", apperrors.ErrAlreadySettled, debt.DebtID)
	}
	return debt.RemainingAmount, nil
}

// BuildPaymentStatistics summarises the payments of a debt.
// Mean is rounded to 2 places and PercentPaid to 4 places before scaling, both half-up.
func BuildPaymentStatistics(debt domain.Debt, payments []domain.Payment) domain.PaymentStatistics {
	stats := domain.PaymentStatistics{
		Count:           len(payments),
		Total:           decimal.Zero,
		Mean:            decimal.Zero,
		Min:             decimal.Zero,
		Max:             decimal.Zero,
		DebtAmount:      debt.DebtAmount,
		RemainingAmount: debt.RemainingAmount,
		PercentPaid:     decimal.Zero,
	}
	if len(payments) > 0 {
		stats.Total = SumPayments(payments)
		stats.Min = payments[0].Amount
		stats.Max = payments[0].Amount
		for _, p := range payments[1:] {
			if p.Amount.LessThan(stats.Min) {
				stats.Min = p.Amount
			}
			if p.Amount.GreaterThan(stats.Max) {
				stats.Max = p.Amount
			}
		}
		stats.Mean = stats.Total.DivRound(decimal.NewFromInt(int64(len(payments))), 2)
	}
	if !debt.DebtAmount.IsZero() {
		stats.PercentPaid = stats.Total.DivRound(debt.DebtAmount, 4).Mul(hundred)
	}
	return stats
}

// BuildClientStatistics assembles the statistics of a client from its debt aggregates.
func BuildClientStatistics(totalDebt, totalRemaining decimal.Decimal, debtCount, settledCount int64) domain.ClientDebtStatistics {
	return domain.ClientDebtStatistics{
		TotalDebt:      totalDebt,
		TotalPaid:      totalDebt.Sub(totalRemaining),
		TotalRemaining: totalRemaining,
		DebtCount:      debtCount,
		SettledCount:   settledCount,
		UnsettledCount: debtCount - settledCount,
	}
}
