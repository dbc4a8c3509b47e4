package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sangkips/ventes-dashboard/internal/application/analytics"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/request"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/render"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
)

const dateLayout = "2006-01-02"

// bindError answers a request that failed binding. Field rule violations
// become field errors; anything else is a malformed request.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.BadRequest(c, "Invalid request")
		return
	}
	fieldErrors := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	response.ValidationError(c, fieldErrors)
}

var fieldNames = map[string]string{
	"Username":    "username",
	"Password":    "password",
	"Name":        "nom",
	"Category":    "categorie",
	"UnitPrice":   "prix_unitaire",
	"Email":       "email",
	"Phone":       "telephone",
	"SaleDate":    "date_vente",
	"ProductID":   "produit_id",
	"ClientID":    "client_id",
	"Quantity":    "quantite",
	"Format":      "format",
	"N":           "n",
	"Granularity": "granularity",
	"By":          "by",
}

func fieldName(fe validator.FieldError) string {
	if name, ok := fieldNames[fe.StructField()]; ok {
		return name
	}
	return strings.ToLower(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	name := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min", "gte":
		return name + " must be at least " + fe.Param()
	case "max", "lte":
		return name + " must be at most " + fe.Param()
	case "datetime":
		return name + " must be a date formatted YYYY-MM-DD"
	case "oneof":
		return name + " must be one of: " + fe.Param()
	}
	return name + " is invalid"
}

// toFilter converts the bound query parameters. An unreadable date is
// dropped, which disables the date range.
func toFilter(req request.FilterRequest) analytics.Filter {
	return analytics.Filter{
		From:       parseDay(req.From),
		To:         parseDay(req.To),
		Categories: req.Categories,
		Products:   req.Products,
		Clients:    req.Clients,
	}
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

func wantsHTML(req request.FilterRequest) bool {
	return req.Format == "html"
}

// figureHTML renders a figure as a page, or answers 404 when the analysis
// produced none
func figureHTML(c *gin.Context, fig *analytics.Figure) {
	if fig == nil {
		response.ErrorWithCode(c, http.StatusNotFound, "Aucune donnée disponible pour le graphique")
		return
	}
	var buf bytes.Buffer
	if err := render.Figure(&buf, fig); err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
