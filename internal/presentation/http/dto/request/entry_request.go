package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name      string  `json:"nom" binding:"required,max=255"`
	Category  string  `json:"categorie" binding:"required,max=255"`
	UnitPrice float64 `json:"prix_unitaire" binding:"required,gte=0.01"`
}

// CreateClientRequest represents a client creation request. Only the name
// is required.
type CreateClientRequest struct {
	Name  string `json:"nom" binding:"required,max=255"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"telephone" binding:"omitempty,max=50"`
}

// CreateSaleRequest represents a sale creation request. The amount is
// computed from the product price. An empty date means today.
type CreateSaleRequest struct {
	SaleDate  string `json:"date_vente" binding:"omitempty,datetime=2006-01-02"`
	ProductID uint   `json:"produit_id" binding:"required"`
	ClientID  *uint  `json:"client_id"`
	Quantity  int    `json:"quantite" binding:"required,min=1"`
}

// QuoteRequest represents the sale price preview parameters
type QuoteRequest struct {
	ProductID uint `form:"produit_id" binding:"required"`
	Quantity  int  `form:"quantite,default=1" binding:"min=1"`
}
