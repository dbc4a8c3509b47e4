package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/application/service"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/request"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
)

// AnalysisHandler handles the in-depth analysis requests. Each accepts the
// sidebar filters and format=html to get the charts as a page.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Period aggregates sales by month, quarter or year
// @Summary Sales by period
// @Tags analysis
// @Security BearerAuth
// @Produce json,html
// @Param granularity query string false "month, quarter or year"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /analysis/period [get]
func (h *AnalysisHandler) Period(c *gin.Context) {
	var req request.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.analysisService.Period(c.Request.Context(), toFilter(req.FilterRequest), req.Granularity)
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsHTML(req.FilterRequest) {
		figureHTML(c, report.Figure)
		return
	}
	response.OK(c, "Period analysis computed", report)
}

// TopProducts ranks the best selling products
// @Summary Top products
// @Tags analysis
// @Security BearerAuth
// @Produce json,html
// @Param n query int false "Number of products (1-50)"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /analysis/top-products [get]
func (h *AnalysisHandler) TopProducts(c *gin.Context) {
	req := request.TopProductsRequest{N: service.DefaultTopProducts}
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.analysisService.TopProducts(c.Request.Context(), toFilter(req.FilterRequest), req.N)
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsHTML(req.FilterRequest) {
		figureHTML(c, report.Figure)
		return
	}
	response.OK(c, "Top products computed", report)
}

// Distribution splits sales by category or client
// @Summary Sales distribution
// @Tags analysis
// @Security BearerAuth
// @Produce json,html
// @Param by query string false "categorie or client"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /analysis/distribution [get]
func (h *AnalysisHandler) Distribution(c *gin.Context) {
	var req request.DistributionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	report, err := h.analysisService.Distribution(c.Request.Context(), toFilter(req.FilterRequest), req.By)
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsHTML(req.FilterRequest) {
		figureHTML(c, report.Figure)
		return
	}
	response.OK(c, "Distribution computed", report)
}
