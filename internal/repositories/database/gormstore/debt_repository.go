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

const debtWithClientColumns = "debts.*, clients.name AS client_name, clients.phone AS client_phone"

// debtRow is a debts row joined with the owning client's name and phone.
type debtRow struct {
	DebtID          int64
	ClientID        int64
	DebtDate        string
	DebtAmount      decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
	LastUpdatedAt   time.Time
	ClientName      string
	ClientPhone     string
}

func (r debtRow) toModel() models.Debt {
	return models.Debt{
		DebtID:          r.DebtID,
		ClientID:        r.ClientID,
		DebtDate:        r.DebtDate,
		DebtAmount:      r.DebtAmount,
		PaidAmount:      r.PaidAmount,
		RemainingAmount: r.RemainingAmount,
		AuditFields:     models.AuditFields{CreatedAt: r.CreatedAt, LastUpdatedAt: r.LastUpdatedAt},
		Client:          &models.Client{ClientID: r.ClientID, Name: r.ClientName, Phone: r.ClientPhone},
	}
}

func toDomainDebtRows(rows []debtRow) []domain.Debt {
	ds := make([]domain.Debt, len(rows))
	for i, row := range rows {
		ds[i] = mapping.ToDomainDebt(row.toModel())
	}
	return ds
}

type GormDebtRepository struct {
	BaseRepository
}

func newGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.DebtRepositoryFacade = (*GormDebtRepository)(nil)

func (r *GormDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) (*domain.Debt, error) {
	m := mapping.ToModelDebt(debt)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to save debt for client %d: %w", m.ClientID, err)
	}
	saved := mapping.ToDomainDebt(m)
	return &saved, nil
}

func (r *GormDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	res := r.db(ctx).Model(&models.Debt{}).Where("debt_id = ?", m.DebtID).Updates(map[string]any{
		"debt_date":        m.DebtDate,
		"debt_amount":      m.DebtAmount,
		"paid_amount":      m.PaidAmount,
		"remaining_amount": m.RemainingAmount,
		"last_updated_at":  m.LastUpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update debt %d: %w", m.DebtID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormDebtRepository) DeleteDebt(ctx context.Context, debtID int64) error {
	res := r.db(ctx).Delete(&models.Debt{}, debtID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete debt %d: %w", debtID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormDebtRepository) FindDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error) {
	var rows []debtRow
	err := r.db(ctx).Model(&models.Debt{}).
		Select(debtWithClientColumns).
		Joins("JOIN clients ON clients.client_id = debts.client_id").
		Where("debts.debt_id = ?", debtID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find debt by id %d: %w", debtID, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainDebt(rows[0].toModel())
	return &d, nil
}

func (r *GormDebtRepository) ExistsDebtByID(ctx context.Context, debtID int64) (bool, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Debt{}).Where("debt_id = ?", debtID).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check debt %d: %w", debtID, err)
	}
	return n > 0, nil
}

func (r *GormDebtRepository) ListDebts(ctx context.Context, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	q := r.db(ctx).Model(&models.Debt{}).Joins("JOIN clients ON clients.client_id = debts.client_id")
	if filter.ClientID != nil {
		q = q.Where("debts.client_id = ?", *filter.ClientID)
	}
	if filter.Phone != "" {
		q = q.Where(`clients.phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
	}
	if filter.MinAmount != nil {
		q = q.Where("debts.debt_amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("debts.debt_amount <= ?", *filter.MaxAmount)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case domain.DebtOpen:
			q = q.Where("debts.remaining_amount > 0")
		case domain.DebtSettled:
			q = q.Where("debts.remaining_amount <= 0")
		}
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return domain.Page[domain.Debt]{}, fmt.Errorf("failed to count debts: %w", err)
	}

	var rows []debtRow
	if err := applyPage(q.Select(debtWithClientColumns), page, "debts.debt_id").Scan(&rows).Error; err != nil {
		return domain.Page[domain.Debt]{}, fmt.Errorf("failed to query debts: %w", err)
	}
	return domain.NewPage(toDomainDebtRows(rows), page, total), nil
}

func (r *GormDebtRepository) CountDebtsByClient(ctx context.Context, clientID int64) (int64, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Debt{}).Where("client_id = ?", clientID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count debts of client %d: %w", clientID, err)
	}
	return n, nil
}

func (r *GormDebtRepository) CountSettledDebtsByClient(ctx context.Context, clientID int64) (int64, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Debt{}).Where("client_id = ? AND remaining_amount <= 0", clientID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count settled debts of client %d: %w", clientID, err)
	}
	return n, nil
}

func (r *GormDebtRepository) SumDebtAmountByClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return r.sumByClient(ctx, "debt_amount", clientID)
}

func (r *GormDebtRepository) SumRemainingByClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return r.sumByClient(ctx, "remaining_amount", clientID)
}

// sumByClient adds the column values in Go; SQLite would sum NUMERIC columns as floats.
func (r *GormDebtRepository) sumByClient(ctx context.Context, column string, clientID int64) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db(ctx).Model(&models.Debt{}).Where("client_id = ?", clientID).Pluck(column, &values).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s of client %d: %w", column, clientID, err)
	}
	return decimal.Sum(decimal.Zero, values...), nil
}
