package repository

import (
	"context"
	"errors"

	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	domainRepo "github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, apperror.NewStoreError("list products", err)
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStoreError("get product", err)
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return apperror.NewStoreError("insert product", err)
	}
	return nil
}
