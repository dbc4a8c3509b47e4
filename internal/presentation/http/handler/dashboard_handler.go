package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/application/service"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/request"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
	"github.com/sangkips/ventes-dashboard/pkg/export"
	"github.com/sangkips/ventes-dashboard/pkg/pagination"
)

// DashboardHandler handles the overview requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// FilterOptions returns the sidebar filter choices
// @Summary Filter options
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /filters [get]
func (h *DashboardHandler) FilterOptions(c *gin.Context) {
	opts, err := h.dashboardService.Options(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Filter options retrieved successfully", opts)
}

// Overview returns the KPIs, the filtered sales and the quick charts
// @Summary Overview
// @Tags dashboard
// @Security BearerAuth
// @Produce json,html
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param category query []string false "Categories"
// @Param product query []string false "Products"
// @Param client query []string false "Clients"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	var req request.OverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	overview, err := h.dashboardService.Overview(c.Request.Context(), toFilter(req.FilterRequest), pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsHTML(req.FilterRequest) {
		figureHTML(c, overview.Charts)
		return
	}
	response.OK(c, "Overview retrieved successfully", overview)
}

// Export downloads the filtered sales as a spreadsheet
// @Summary Export sales
// @Tags dashboard
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /overview/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	var req request.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.dashboardService.Export(c.Request.Context(), toFilter(req), &buf); err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+service.ExportFileName)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
