package repository

import (
	"context"

	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// List returns every sale joined to its product and, when set, its client
	List(ctx context.Context) ([]entity.SaleView, error)
	Create(ctx context.Context, sale *entity.Sale) error
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID returns (nil, nil) when the product does not exist
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
}

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	// GetByID returns (nil, nil) when the client does not exist
	GetByID(ctx context.Context, id uint) (*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
}
