package services

import (
	"context"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/SscSPs/debt_ledger_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client. Returns apperrors.ErrNotFound if absent.
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// GetClientByPhone retrieves the client registered with exactly this phone.
	GetClientByPhone(ctx context.Context, phone string) (*domain.Client, error)

	// SearchClientsByPhone retrieves a page of clients whose phone contains the fragment.
	SearchClientsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Client], error)

	// ListClients retrieves a page of clients matching the filter.
	ListClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) (domain.Page[domain.Client], error)

	// ListAllClients retrieves every client without pagination.
	ListAllClients(ctx context.Context) ([]domain.Client, error)

	ClientExists(ctx context.Context, clientID int64) (bool, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// AddClient registers a new client. The phone must not already be registered.
	AddClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient replaces the details of an existing client.
	UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client that owns no debts.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
