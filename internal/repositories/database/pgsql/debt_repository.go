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

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt data.
func newPgxDebtRepository(pool *pgxpool.Pool) *PgxDebtRepository {
	return &PgxDebtRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const (
	selectDebtFields = `
		debts.debt_id, debts.client_id, debts.debt_date, debts.debt_amount, debts.paid_amount,
		debts.remaining_amount, debts.created_at, debts.last_updated_at, clients.name, clients.phone`

	debtsJoinClients = ` FROM debts JOIN clients ON clients.client_id = debts.client_id`
)

func scanDebt(row pgx.Row) (models.Debt, error) {
	var d models.Debt
	client := &models.Client{}
	err := row.Scan(
		&d.DebtID,
		&d.ClientID,
		&d.DebtDate,
		&d.DebtAmount,
		&d.PaidAmount,
		&d.RemainingAmount,
		&d.CreatedAt,
		&d.LastUpdatedAt,
		&client.Name,
		&client.Phone,
	)
	client.ClientID = d.ClientID
	d.Client = client
	return d, err
}

// SaveDebt inserts a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) (*domain.Debt, error) {
	m := mapping.ToModelDebt(debt)
	query := `
		INSERT INTO debts (client_id, debt_date, debt_amount, paid_amount, remaining_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING debt_id;
	`
	err := r.conn(ctx).QueryRow(ctx, query,
		m.ClientID,
		m.DebtDate,
		m.DebtAmount,
		m.PaidAmount,
		m.RemainingAmount,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&m.DebtID)
	if err != nil {
		return nil, fmt.Errorf("failed to save debt for client %d: %w", m.ClientID, err)
	}

	saved := mapping.ToDomainDebt(m)
	return &saved, nil
}

// UpdateDebt stores date, amounts and the update timestamp of a debt.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)
	query := `
		UPDATE debts
		SET debt_date = $2, debt_amount = $3, paid_amount = $4, remaining_amount = $5, last_updated_at = $6
		WHERE debt_id = $1;
	`
	tag, err := r.conn(ctx).Exec(ctx, query, m.DebtID, m.DebtDate, m.DebtAmount, m.PaidAmount, m.RemainingAmount, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update debt %d: %w", m.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM debts WHERE debt_id = $1;`, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %d: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDebtByID retrieves a debt together with its client's name and phone.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID int64) (*domain.Debt, error) {
	query := `SELECT ` + selectDebtFields + debtsJoinClients + ` WHERE debts.debt_id = $1;`
	m, err := scanDebt(r.conn(ctx).QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by id %d: %w", debtID, err)
	}
	d := mapping.ToDomainDebt(m)
	return &d, nil
}

func (r *PgxDebtRepository) ExistsDebtByID(ctx context.Context, debtID int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM debts WHERE debt_id = $1);`, debtID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check debt %d: %w", debtID, err)
	}
	return exists, nil
}

// ListDebts retrieves a page of debts matching the filter.
func (r *PgxDebtRepository) ListDebts(ctx context.Context, filter domain.DebtFilter, page domain.PageRequest) (domain.Page[domain.Debt], error) {
	var w whereBuilder
	if filter.ClientID != nil {
		w.add("debts.client_id = ?", *filter.ClientID)
	}
	if filter.Phone != "" {
		w.add(`clients.phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
	}
	if filter.MinAmount != nil {
		w.add("debts.debt_amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		w.add("debts.debt_amount <= ?", *filter.MaxAmount)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case domain.DebtOpen:
			w.addRaw("debts.remaining_amount > 0")
		case domain.DebtSettled:
			w.addRaw("debts.remaining_amount <= 0")
		}
	}

	var total int64
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*)`+debtsJoinClients+w.String(), w.args...).Scan(&total); err != nil {
		return domain.Page[domain.Debt]{}, fmt.Errorf("failed to count debts: %w", err)
	}

	query := `SELECT ` + selectDebtFields + debtsJoinClients + w.String() + w.pageClause(page, "debts.debt_id")
	rows, err := r.conn(ctx).Query(ctx, query, w.args...)
	if err != nil {
		return domain.Page[domain.Debt]{}, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	modelDebts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Debt, error) {
		return scanDebt(row)
	})
	if err != nil {
		return domain.Page[domain.Debt]{}, fmt.Errorf("failed to scan debts: %w", err)
	}
	return domain.NewPage(mapping.ToDomainDebtSlice(modelDebts), page, total), nil
}

func (r *PgxDebtRepository) CountDebtsByClient(ctx context.Context, clientID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM debts WHERE client_id = $1;`, clientID)
}

func (r *PgxDebtRepository) CountSettledDebtsByClient(ctx context.Context, clientID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM debts WHERE client_id = $1 AND remaining_amount <= 0;`, clientID)
}

func (r *PgxDebtRepository) SumDebtAmountByClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(debt_amount), 0) FROM debts WHERE client_id = $1;`, clientID)
}

func (r *PgxDebtRepository) SumRemainingByClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(remaining_amount), 0) FROM debts WHERE client_id = $1;`, clientID)
}

func (r *PgxDebtRepository) count(ctx context.Context, query string, clientID int64) (int64, error) {
	var n int64
	if err := r.conn(ctx).QueryRow(ctx, query, clientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count debts of client %d: %w", clientID, err)
	}
	return n, nil
}

func (r *PgxDebtRepository) sum(ctx context.Context, query string, clientID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.conn(ctx).QueryRow(ctx, query, clientID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum debts of client %d: %w", clientID, err)
	}
	return total, nil
}
