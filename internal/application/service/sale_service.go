package service

import (
	"context"
	"time"

	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SaleService records sales and prepares the sale form
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	log         logrus.FieldLogger
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	log logrus.FieldLogger,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		log:         log,
	}
}

// CreateSaleInput represents the create sale input. A zero SaleDate means
// today.
type CreateSaleInput struct {
	SaleDate  time.Time
	ProductID uint
	ClientID  *uint
	Quantity  int
}

// Quote is the price preview of a sale
type Quote struct {
	ProductID uint    `json:"produit_id"`
	Label     string  `json:"produit"`
	UnitPrice float64 `json:"prix_unitaire"`
	Quantity  int     `json:"quantite"`
	Amount    float64 `json:"montant"`
}

// Choice is one entry of a form select
type Choice struct {
	ID    *uint  `json:"id"`
	Label string `json:"label"`
}

// FormOptions lists the choices of the sale form
type FormOptions struct {
	Products []Choice `json:"produits"`
	Clients  []Choice `json:"clients"`
}

// Quote prices quantity units of a product at its current unit price
func (s *SaleService) Quote(ctx context.Context, productID uint, quantity int) (*Quote, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	var fieldErrors []apperror.FieldError
	if product == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "produit_id", Message: UnknownProductLabel})
	}
	if quantity < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantite", Message: "quantite must be at least 1"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewInputError(fieldErrors)
	}

	return &Quote{
		ProductID: product.ID,
		Label:     product.Name + " - " + product.Category,
		UnitPrice: product.UnitPrice.InexactFloat64(),
		Quantity:  quantity,
		Amount:    amountOf(product, quantity).InexactFloat64(),
	}, nil
}

// CreateSale records a sale priced from the stored product. Nothing is
// inserted when a field is invalid.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	var fieldErrors []apperror.FieldError
	if input.Quantity < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantite", Message: "quantite must be at least 1"})
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "produit_id", Message: "Veuillez sélectionner un produit valide"})
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "client_id", Message: "client not found"})
		}
	}

	if len(fieldErrors) == 0 && !amountOf(product, input.Quantity).IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "montant", Message: "montant must be positive"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewInputError(fieldErrors)
	}

	date := input.SaleDate
	if date.IsZero() {
		date = time.Now()
	}
	sale := &entity.Sale{
		SaleDate:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		ProductID: product.ID,
		ClientID:  input.ClientID,
		Quantity:  input.Quantity,
		Amount:    amountOf(product, input.Quantity),
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"sale_id":  sale.ID,
		"product":  product.Name,
		"quantite": sale.Quantity,
		"montant":  sale.Amount.StringFixed(2),
	}).Info("sale recorded")
	return sale, nil
}

// FormOptions lists products as "nom - categorie" and clients by name,
// with a leading "no client" choice.
func (s *SaleService) FormOptions(ctx context.Context) (*FormOptions, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	opts := &FormOptions{
		Products: make([]Choice, 0, len(products)),
		Clients:  make([]Choice, 0, len(clients)+1),
	}
	for _, p := range products {
		id := p.ID
		opts.Products = append(opts.Products, Choice{ID: &id, Label: ProductLabel(products, id)})
	}
	opts.Clients = append(opts.Clients, Choice{Label: ClientLabel(clients, nil)})
	for _, c := range clients {
		id := c.ID
		opts.Clients = append(opts.Clients, Choice{ID: &id, Label: ClientLabel(clients, &id)})
	}
	return opts, nil
}

func amountOf(product *entity.Product, quantity int) decimal.Decimal {
	return product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
