package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/application/service"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/request"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// EntryHandler handles the data entry forms
type EntryHandler struct {
	productService *service.ProductService
	clientService  *service.ClientService
	saleService    *service.SaleService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(
	productService *service.ProductService,
	clientService *service.ClientService,
	saleService *service.SaleService,
) *EntryHandler {
	return &EntryHandler{
		productService: productService,
		clientService:  clientService,
		saleService:    saleService,
	}
}

// ListProducts lists every product
// @Summary List products
// @Tags entry
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /entry/products [get]
func (h *EntryHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// CreateProduct handles the new product form
// @Summary Create product
// @Tags entry
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /entry/products [post]
func (h *EntryHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		UnitPrice: decimal.NewFromFloat(req.UnitPrice),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Produit ajouté avec succès", product)
}

// ListClients lists every client
// @Summary List clients
// @Tags entry
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /entry/clients [get]
func (h *EntryHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Clients retrieved successfully", clients)
}

// CreateClient handles the new client form
// @Summary Create client
// @Tags entry
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateClientRequest true "Client data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /entry/clients [post]
func (h *EntryHandler) CreateClient(c *gin.Context) {
	var req request.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &service.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Client ajouté avec succès", client)
}

// CreateSale handles the new sale form
// @Summary Create sale
// @Tags entry
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /entry/sales [post]
func (h *EntryHandler) CreateSale(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var saleDate time.Time
	if d := parseDay(req.SaleDate); d != nil {
		saleDate = *d
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		SaleDate:  saleDate,
		ProductID: req.ProductID,
		ClientID:  req.ClientID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vente enregistrée avec succès", gin.H{
		"id":         sale.ID,
		"date_vente": sale.SaleDate.Format(dateLayout),
		"produit_id": sale.ProductID,
		"client_id":  sale.ClientID,
		"quantite":   sale.Quantity,
		"montant":    sale.Amount.InexactFloat64(),
	})
}

// QuoteSale previews the unit price and amount of a sale
// @Summary Quote sale
// @Tags entry
// @Security BearerAuth
// @Produce json
// @Param produit_id query int true "Product ID"
// @Param quantite query int false "Quantity"
// @Success 200 {object} response.APIResponse
// @Router /entry/sales/quote [get]
func (h *EntryHandler) QuoteSale(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	quote, err := h.saleService.Quote(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quote computed", quote)
}

// FormOptions returns the product and client choices of the sale form
// @Summary Sale form options
// @Tags entry
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /entry/options [get]
func (h *EntryHandler) FormOptions(c *gin.Context) {
	opts, err := h.saleService.FormOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Form options retrieved successfully", opts)
}
