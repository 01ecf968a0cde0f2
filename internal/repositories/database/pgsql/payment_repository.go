package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_ledger_app/internal/models"
	"github.com/SscSPs/debt_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const (
	selectPaymentFields = `
		payments.payment_id, payments.debt_id, payments.amount, payments.payment_date,
		payments.created_at, payments.last_updated_at, debts.debt_amount, clients.name, clients.phone`

	paymentsJoinDebts = `
		FROM payments
		JOIN debts ON debts.debt_id = payments.debt_id
		JOIN clients ON clients.client_id = debts.client_id`
)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var p models.Payment
	debt := &models.Debt{Client: &models.Client{}}
	err := row.Scan(
		&p.PaymentID,
		&p.DebtID,
		&p.Amount,
		&p.PaymentDate,
		&p.CreatedAt,
		&p.LastUpdatedAt,
		&debt.DebtAmount,
		&debt.Client.Name,
		&debt.Client.Phone,
	)
	debt.DebtID = p.DebtID
	p.Debt = debt
	return p, err
}

// SavePayment inserts a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (debt_id, amount, payment_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id;
	`
	err := r.conn(ctx).QueryRow(ctx, query, m.DebtID, m.Amount, m.PaymentDate, m.CreatedAt, m.LastUpdatedAt).Scan(&m.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment for debt %d: %w", m.DebtID, err)
	}

	saved := mapping.ToDomainPayment(m)
	return &saved, nil
}

// UpdatePayment stores amount, payment date and the update timestamp. created_at is left untouched.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments
		SET amount = $2, payment_date = $3, last_updated_at = $4
		WHERE payment_id = $1;
	`
	tag, err := r.conn(ctx).Exec(ctx, query, m.PaymentID, m.Amount, m.PaymentDate, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update payment %d: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPaymentByID retrieves a payment with its debt amount and client details.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `SELECT ` + selectPaymentFields + paymentsJoinDebts + ` WHERE payments.payment_id = $1;`
	m, err := scanPayment(r.conn(ctx).QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by id %d: %w", paymentID, err)
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

func (r *PgxPaymentRepository) ExistsPaymentByID(ctx context.Context, paymentID int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE payment_id = $1);`, paymentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payment %d: %w", paymentID, err)
	}
	return exists, nil
}

// ListPayments retrieves a page of payments matching the filter.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	var w whereBuilder
	if filter.DebtID != nil {
		w.add("payments.debt_id = ?", *filter.DebtID)
	}
	if filter.Phone != "" {
		w.add(`clients.phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
	}
	if filter.MinAmount != nil {
		w.add("payments.amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		w.add("payments.amount <= ?", *filter.MaxAmount)
	}

	var total int64
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*)`+paymentsJoinDebts+w.String(), w.args...).Scan(&total); err != nil {
		return domain.Page[domain.Payment]{}, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `SELECT ` + selectPaymentFields + paymentsJoinDebts + w.String() + w.pageClause(page, "payments.payment_id")
	payments, err := r.collectPayments(ctx, query, w.args...)
	if err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	return domain.NewPage(payments, page, total), nil
}

// ListPaymentsByDebt retrieves all payments of a debt, newest first.
func (r *PgxPaymentRepository) ListPaymentsByDebt(ctx context.Context, debtID int64) ([]domain.Payment, error) {
	query := `SELECT ` + selectPaymentFields + paymentsJoinDebts + `
		WHERE payments.debt_id = $1
		ORDER BY payments.created_at DESC, payments.payment_id DESC;`
	return r.collectPayments(ctx, query, debtID)
}

func (r *PgxPaymentRepository) CountPaymentsByDebt(ctx context.Context, debtID int64) (int64, error) {
	var n int64
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE debt_id = $1;`, debtID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count payments of debt %d: %w", debtID, err)
	}
	return n, nil
}

func (r *PgxPaymentRepository) SumPaymentsByDebt(ctx context.Context, debtID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE debt_id = $1;`, debtID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments of debt %d: %w", debtID, err)
	}
	return total, nil
}

func (r *PgxPaymentRepository) collectPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
