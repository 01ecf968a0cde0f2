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
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const selectClientFields = `clients.client_id, clients.name, clients.phone, clients.address, clients.created_at, clients.last_updated_at`

func scanClient(row pgx.Row) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ClientID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt, &c.LastUpdatedAt)
	return c, err
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (name, phone, address, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING client_id;
	`
	err := r.conn(ctx).QueryRow(ctx, query, m.Name, m.Phone, m.Address, m.CreatedAt, m.LastUpdatedAt).Scan(&m.ClientID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone %s is already registered", apperrors.ErrDuplicatePhone, m.Phone)
		}
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	saved := mapping.ToDomainClient(m)
	return &saved, nil
}

// UpdateClient updates the details of an existing client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, phone = $3, address = $4, last_updated_at = $5
		WHERE client_id = $1;
	`
	tag, err := r.conn(ctx).Exec(ctx, query, m.ClientID, m.Name, m.Phone, m.Address, m.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: phone %s is already registered", apperrors.ErrDuplicatePhone, m.Phone)
		}
		return fmt.Errorf("failed to update client %d: %w", m.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client. Owned debts are removed by the foreign key cascade.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + selectClientFields + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.conn(ctx).QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by id %d: %w", clientID, err)
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}

// FindClientByPhone retrieves a client by its exact phone number.
func (r *PgxClientRepository) FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := `SELECT ` + selectClientFields + ` FROM clients WHERE phone = $1;`
	m, err := scanClient(r.conn(ctx).QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by phone %s: %w", phone, err)
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) ExistsClientByID(ctx context.Context, clientID int64) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE client_id = $1);`, clientID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client %d: %w", clientID, err)
	}
	return exists, nil
}

func (r *PgxClientRepository) ExistsClientByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE phone = $1);`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check phone %s: %w", phone, err)
	}
	return exists, nil
}

// ListClients retrieves a page of clients filtered by name and phone substrings.
func (r *PgxClientRepository) ListClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) (domain.Page[domain.Client], error) {
	var w whereBuilder
	if filter.Name != "" {
		w.add(`clients.name ILIKE ? ESCAPE '\'`, likePattern(filter.Name))
	}
	if filter.Phone != "" {
		w.add(`clients.phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
	}

	var total int64
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM clients`+w.String(), w.args...).Scan(&total); err != nil {
		return domain.Page[domain.Client]{}, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `SELECT ` + selectClientFields + ` FROM clients` + w.String() + w.pageClause(page, "clients.client_id")
	clients, err := r.collectClients(ctx, query, w.args...)
	if err != nil {
		return domain.Page[domain.Client]{}, err
	}
	return domain.NewPage(clients, page, total), nil
}

// ListAllClients retrieves every client ordered by name.
func (r *PgxClientRepository) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	return r.collectClients(ctx, `SELECT `+selectClientFields+` FROM clients ORDER BY clients.name, clients.client_id;`)
}

func (r *PgxClientRepository) collectClients(ctx context.Context, query string, args ...any) ([]domain.Client, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}
