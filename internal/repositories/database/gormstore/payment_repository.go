package gormstore

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_ledger_app/internal/models"
	"github.com/SscSPs/debt_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const paymentWithDebtColumns = "payments.*, debts.debt_amount AS debt_amount, clients.name AS client_name, clients.phone AS client_phone"

// paymentRow is a payments row joined with its debt amount and the client's name and phone.
type paymentRow struct {
	PaymentID     int64
	DebtID        int64
	Amount        decimal.Decimal
	PaymentDate   string
	CreatedAt     time.Time
	LastUpdatedAt time.Time
	DebtAmount    decimal.Decimal
	ClientName    string
	ClientPhone   string
}

func (r paymentRow) toModel() models.Payment {
	return models.Payment{
		PaymentID:   r.PaymentID,
		DebtID:      r.DebtID,
		Amount:      r.Amount,
		PaymentDate: r.PaymentDate,
		AuditFields: models.AuditFields{CreatedAt: r.CreatedAt, LastUpdatedAt: r.LastUpdatedAt},
		Debt: &models.Debt{
			DebtID:     r.DebtID,
			DebtAmount: r.DebtAmount,
			Client:     &models.Client{Name: r.ClientName, Phone: r.ClientPhone},
		},
	}
}

func toDomainPaymentRows(rows []paymentRow) []domain.Payment {
	ps := make([]domain.Payment, len(rows))
	for i, row := range rows {
		ps[i] = mapping.ToDomainPayment(row.toModel())
	}
	return ps
}

// withDebtAndClient joins the owning debt and client onto a payments query.
func withDebtAndClient(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN debts ON debts.debt_id = payments.debt_id").
		Joins("JOIN clients ON clients.client_id = debts.client_id")
}

type GormPaymentRepository struct {
	BaseRepository
}

func newGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*GormPaymentRepository)(nil)

func (r *GormPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to save payment for debt %d: %w", m.DebtID, err)
	}
	saved := mapping.ToDomainPayment(m)
	return &saved, nil
}

func (r *GormPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	res := r.db(ctx).Model(&models.Payment{}).Where("payment_id = ?", payment.PaymentID).Updates(map[string]any{
		"amount":          payment.Amount,
		"payment_date":    payment.PaymentDate,
		"last_updated_at": payment.LastUpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update payment %d: %w", payment.PaymentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	res := r.db(ctx).Delete(&models.Payment{}, paymentID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	var rows []paymentRow
	err := withDebtAndClient(r.db(ctx).Model(&models.Payment{})).
		Select(paymentWithDebtColumns).
		Where("payments.payment_id = ?", paymentID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find payment by id %d: %w", paymentID, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}
	p := mapping.ToDomainPayment(rows[0].toModel())
	return &p, nil
}

func (r *GormPaymentRepository) ExistsPaymentByID(ctx context.Context, paymentID int64) (bool, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Payment{}).Where("payment_id = ?", paymentID).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check payment %d: %w", paymentID, err)
	}
	return n > 0, nil
}

func (r *GormPaymentRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter, page domain.PageRequest) (domain.Page[domain.Payment], error) {
	q := withDebtAndClient(r.db(ctx).Model(&models.Payment{}))
	if filter.DebtID != nil {
		q = q.Where("payments.debt_id = ?", *filter.DebtID)
	}
	if filter.Phone != "" {
		q = q.Where(`clients.phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
	}
	if filter.MinAmount != nil {
		q = q.Where("payments.amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("payments.amount <= ?", *filter.MaxAmount)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return domain.Page[domain.Payment]{}, fmt.Errorf("failed to count payments: %w", err)
	}

	var rows []paymentRow
	if err := applyPage(q.Select(paymentWithDebtColumns), page, "payments.payment_id").Scan(&rows).Error; err != nil {
		return domain.Page[domain.Payment]{}, fmt.Errorf("failed to query payments: %w", err)
	}
	return domain.NewPage(toDomainPaymentRows(rows), page, total), nil
}

func (r *GormPaymentRepository) ListPaymentsByDebt(ctx context.Context, debtID int64) ([]domain.Payment, error) {
	var rows []paymentRow
	err := withDebtAndClient(r.db(ctx).Model(&models.Payment{})).
		Select(paymentWithDebtColumns).
		Where("payments.debt_id = ?", debtID).
		Order("payments.created_at DESC").Order("payments.payment_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of debt %d: %w", debtID, err)
	}
	return toDomainPaymentRows(rows), nil
}

func (r *GormPaymentRepository) CountPaymentsByDebt(ctx context.Context, debtID int64) (int64, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Payment{}).Where("debt_id = ?", debtID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count payments of debt %d: %w", debtID, err)
	}
	return n, nil
}

// SumPaymentsByDebt adds the amounts in Go; SQLite would sum NUMERIC columns as floats.
func (r *GormPaymentRepository) SumPaymentsByDebt(ctx context.Context, debtID int64) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db(ctx).Model(&models.Payment{}).Where("debt_id = ?", debtID).Pluck("amount", &values).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments of debt %d: %w", debtID, err)
	}
	return decimal.Sum(decimal.Zero, values...), nil
}
