package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/debt_ledger_app/internal/apperrors"
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_ledger_app/internal/models"
	"github.com/SscSPs/debt_ledger_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormClientRepository struct {
	BaseRepository
}

func newGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ClientRepositoryFacade = (*GormClientRepository)(nil)

func (r *GormClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)
	if err := r.db(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: phone %s is already registered", apperrors.ErrDuplicatePhone, m.Phone)
		}
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	saved := mapping.ToDomainClient(m)
	return &saved, nil
}

func (r *GormClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	res := r.db(ctx).Model(&models.Client{}).Where("client_id = ?", client.ClientID).Updates(map[string]any{
		"name":            client.Name,
		"phone":           client.Phone,
		"address":         client.Address,
		"last_updated_at": client.LastUpdatedAt,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: phone %s is already registered", apperrors.ErrDuplicatePhone, client.Phone)
		}
		return fmt.Errorf("failed to update client %d: %w", client.ClientID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	res := r.db(ctx).Delete(&models.Client{}, clientID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GormClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return r.findOne(ctx, "client_id = ?", clientID)
}

func (r *GormClientRepository) FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *GormClientRepository) findOne(ctx context.Context, cond string, arg any) (*domain.Client, error) {
	var m models.Client
	if err := r.db(ctx).Where(cond, arg).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	c := mapping.ToDomainClient(m)
	return &c, nil
}

func (r *GormClientRepository) ExistsClientByID(ctx context.Context, clientID int64) (bool, error) {
	return r.exists(ctx, "client_id = ?", clientID)
}

func (r *GormClientRepository) ExistsClientByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone = ?", phone)
}

func (r *GormClientRepository) exists(ctx context.Context, cond string, arg any) (bool, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Client{}).Where(cond, arg).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check client: %w", err)
	}
	return n > 0, nil
}

func (r *GormClientRepository) ListClients(ctx context.Context, filter domain.ClientFilter, page domain.PageRequest) (domain.Page[domain.Client], error) {
	q := r.db(ctx).Model(&models.Client{})
	if filter.Name != "" {
		q = q.Where(`LOWER(clients.name) LIKE LOWER(?) ESCAPE '\'`, likePattern(filter.Name))
	}
	if filter.Phone != "" {
		q = q.Where(`clients.phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return domain.Page[domain.Client]{}, fmt.Errorf("failed to count clients: %w", err)
	}

	var rows []models.Client
	if err := applyPage(q, page, "clients.client_id").Find(&rows).Error; err != nil {
		return domain.Page[domain.Client]{}, fmt.Errorf("failed to query clients: %w", err)
	}
	return domain.NewPage(mapping.ToDomainClientSlice(rows), page, total), nil
}

func (r *GormClientRepository) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	var rows []models.Client
	if err := r.db(ctx).Order("name").Order("client_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	return mapping.ToDomainClientSlice(rows), nil
}
