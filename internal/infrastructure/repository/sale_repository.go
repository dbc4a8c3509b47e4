package repository

import (
	"context"

	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	domainRepo "github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) List(ctx context.Context) ([]entity.SaleView, error) {
	var rows []entity.SaleView

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			CAST(v.date_vente AS TEXT) AS date_vente,
			p.nom AS produit,
			p.categorie,
			c.nom AS client,
			v.quantite,
			v.montant
		FROM ventes v
		JOIN produits p ON v.produit_id = p.id
		LEFT JOIN clients c ON v.client_id = c.id
		ORDER BY v.id
	`).Scan(&rows).Error
	if err != nil {
		return nil, apperror.NewStoreError("list sales", err)
	}

	return rows, nil
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	if err := r.db.WithContext(ctx).Omit("Product", "Client").Create(sale).Error; err != nil {
		return apperror.NewStoreError("insert sale", err)
	}
	return nil
}
