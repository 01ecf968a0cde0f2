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
)

// ClientService handles business logic related to clients.
type ClientService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	clientRepo portsrepo.ClientRepositoryFacade
	debtRepo   portsrepo.DebtAggregates
}

// NewClientService creates a new ClientService.
func NewClientService(txManager portsrepo.TransactionManager, clientRepo portsrepo.ClientRepositoryFacade, debtRepo portsrepo.DebtAggregates) *ClientService {
	return &ClientService{
		txManager:  txManager,
		clientRepo: clientRepo,
		debtRepo:   debtRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

// AddClient registers a new client.
func (s *ClientService) AddClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Client
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := s.clientRepo.ExistsClientByPhone(ctx, client.Phone)
		if err != nil {
			return fmt.Errorf("failed to check phone: %w", err)
		}
		if taken {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicatePhone, client.Phone)
		}
		saved, err = s.clientRepo.SaveClient(ctx, client)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add client", slog.String("phone", client.Phone))
		return nil, err
	}

	s.LogInfo(ctx, "Client added", slog.Int64("client_id", saved.ClientID))
	return saved, nil
}

// UpdateClient replaces the name, phone and address of a client.
// Keeping the current phone is allowed; taking another client's phone is not.
func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	var updated *domain.Client
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		client, err := s.clientRepo.FindClientByID(ctx, clientID)
		if err != nil {
			return err
		}

		phoneChanged := req.Phone != client.Phone
		client.Name = req.Name
		client.Phone = req.Phone
		client.Address = req.Address
		client.LastUpdatedAt = time.Now()
		if err := client.Validate(); err != nil {
			return err
		}

		if phoneChanged {
			taken, err := s.clientRepo.ExistsClientByPhone(ctx, req.Phone)
			if err != nil {
				return fmt.Errorf("failed to check phone: %w", err)
			}
			if taken {
				return fmt.Errorf("%w: %s", apperrors.ErrDuplicatePhone, req.Phone)
			}
		}

		if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update client", slog.Int64("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client updated", slog.Int64("client_id", clientID))
	return updated, nil
}

// DeleteClient removes a client that owns no debts.
func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.clientRepo.ExistsClientByID(ctx, clientID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: client %d", apperrors.ErrNotFound, clientID)
		}

		debts, err := s.debtRepo.CountDebtsByClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to count debts of client %d: %w", clientID, err)
		}
		if debts > 0 {
			return fmt.Errorf("%w: client %d still has %d debt(s)", apperrors.ErrHasDependents, clientID, debts)
		}

		return s.clientRepo.DeleteClient(ctx, clientID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete client", slog.Int64("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted", slog.Int64("client_id", clientID))
	return nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *ClientService) GetClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", apperrors.ErrValidation)
	}
	return s.clientRepo.FindClientByPhone(ctx, phone)
}

func (s *ClientService) SearchClientsByPhone(ctx context.Context, phone string, page domain.PageRequest) (domain.Page[domain.Client], error) {
	if strings.TrimSpace(phone) == "" {
		return domain.Page[domain.Client]{}, fmt.Errorf("%w: phone is required", apperrors.ErrValidation)
	}
	return s.clientRepo.ListClients(ctx, domain.ClientFilter{Phone: phone}, page)
}

func (s *ClientService) ListClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) (domain.Page[domain.Client], error) {
	return s.clientRepo.ListClients(ctx, filter, page)
}

func (s *ClientService) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListAllClients(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *ClientService) ClientExists(ctx context.Context, clientID int64) (bool, error) {
	return s.clientRepo.ExistsClientByID(ctx, clientID)
}
