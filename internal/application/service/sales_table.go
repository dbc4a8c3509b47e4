package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/ventes-dashboard/internal/application/analytics"
	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// loadSales reads the joined sales listing into an analytics table. Sales
// whose date cannot be read are left out and reported as a warning.
func loadSales(ctx context.Context, saleRepo repository.SaleRepository, log logrus.FieldLogger) (*analytics.Table, []string, error) {
	views, err := saleRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	table := analytics.NewTable(analytics.SalesColumns...)
	dropped := 0
	for _, v := range views {
		d, ok := analytics.ParseDate(v.SaleDate)
		if !ok || d.IsZero() {
			dropped++
			log.WithFields(logrus.Fields{"sale_id": v.ID, "date_vente": v.SaleDate}).Warn("dropping sale with unreadable date")
			continue
		}
		table.Append(saleRow(v, analytics.Day(d)))
	}

	var warnings []string
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("%d vente(s) ignorée(s): date de vente illisible", dropped))
	}
	return table, warnings, nil
}

func saleRow(v entity.SaleView, day time.Time) analytics.Row {
	var client any
	if v.Client != nil {
		client = *v.Client
	}
	return analytics.Row{
		analytics.ColID:       v.ID,
		analytics.ColSaleDate: day,
		analytics.ColProduct:  v.Product,
		analytics.ColCategory: v.Category,
		analytics.ColClient:   client,
		analytics.ColQuantity: v.Quantity,
		analytics.ColAmount:   v.Amount,
	}
}

// SaleRecord is one row of the sales table as shown to the dashboard
type SaleRecord struct {
	ID       uint    `json:"id"`
	SaleDate string  `json:"date_vente"`
	Product  string  `json:"produit"`
	Category string  `json:"categorie"`
	Client   *string `json:"client"`
	Quantity int64   `json:"quantite"`
	Amount   float64 `json:"montant"`
}

func saleRecords(table *analytics.Table) []SaleRecord {
	records := make([]SaleRecord, 0, table.Len())
	for _, r := range table.Rows() {
		rec := SaleRecord{}
		rec.ID, _ = r[analytics.ColID].(uint)
		if d, ok := r[analytics.ColSaleDate].(time.Time); ok {
			rec.SaleDate = d.Format(dateLayout)
		}
		rec.Product, _ = r[analytics.ColProduct].(string)
		rec.Category, _ = r[analytics.ColCategory].(string)
		if c, ok := r[analytics.ColClient].(string); ok {
			rec.Client = &c
		}
		rec.Quantity, _ = r[analytics.ColQuantity].(int64)
		if a, ok := r[analytics.ColAmount].(decimal.Decimal); ok {
			rec.Amount = a.InexactFloat64()
		}
		records = append(records, rec)
	}
	return records
}

func (r SaleRecord) cells() []any {
	var client any
	if r.Client != nil {
		client = *r.Client
	}
	return []any{r.ID, r.SaleDate, r.Product, r.Category, client, r.Quantity, r.Amount}
}
