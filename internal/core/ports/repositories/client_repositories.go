package repositories

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its identifier. Returns apperrors.ErrNotFound if absent.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// FindClientByPhone retrieves a client by its exact phone number. Returns apperrors.ErrNotFound if absent.
	FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error)

	ExistsClientByID(ctx context.Context, clientID int64) (bool, error)
	ExistsClientByPhone(ctx context.Context, phone string) (bool, error)

	// ListClients retrieves a page of clients matching the filter.
	ListClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) (domain.Page[domain.Client], error)

	// ListAllClients retrieves every client ordered by name.
	ListAllClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client and returns it with its assigned identifier.
	// Returns apperrors.ErrDuplicatePhone if the phone is already registered.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient updates name, phone and address of an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
