package service

import (
	"context"
	"strings"

	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	log         logrus.FieldLogger
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, log logrus.FieldLogger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		log:         log,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name      string
	Category  string
	UnitPrice decimal.Decimal
}

// ListProducts returns every product
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// CreateProduct creates a new product. All fields are required and the
// price must be positive.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	price := input.UnitPrice.Round(2)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "nom", Message: "nom is required"})
	}
	if category == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "categorie", Message: "categorie is required"})
	}
	if !price.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "prix_unitaire", Message: "prix_unitaire must be at least 0.01"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewInputError(fieldErrors)
	}

	product := &entity.Product{Name: name, Category: category, UnitPrice: price}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"product_id": product.ID, "nom": product.Name}).Info("product created")
	return product, nil
}
