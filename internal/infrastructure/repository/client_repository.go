package repository

import (
	"context"
	"errors"

	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	domainRepo "github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) List(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, apperror.NewStoreError("list clients", err)
	}
	return clients, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uint) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStoreError("get client", err)
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return apperror.NewStoreError("insert client", err)
	}
	return nil
}
