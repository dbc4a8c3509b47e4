package service

import (
	"context"
	"io"

	"github.com/sangkips/ventes-dashboard/internal/application/analytics"
	"github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/export"
	"github.com/sangkips/ventes-dashboard/pkg/pagination"
	"github.com/sirupsen/logrus"
)

// ExportFileName is the download name of the sales export
const ExportFileName = "ventes.xlsx"

// DashboardService serves the overview: filter options, KPIs, the filtered
// sales and their export
type DashboardService struct {
	saleRepo repository.SaleRepository
	log      logrus.FieldLogger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(saleRepo repository.SaleRepository, log logrus.FieldLogger) *DashboardService {
	return &DashboardService{
		saleRepo: saleRepo,
		log:      log,
	}
}

// FilterOptions are the choices of the sidebar filters. The date bounds are
// nil when no sale has a readable date.
type FilterOptions struct {
	From       *string  `json:"from"`
	To         *string  `json:"to"`
	Categories []string `json:"categories"`
	Products   []string `json:"products"`
	Clients    []string `json:"clients"`
	Warnings   []string `json:"warnings"`
}

// Overview is the content of the overview view
type Overview struct {
	KPIs     analytics.KPIs                          `json:"kpis"`
	Sales    *pagination.PaginatedResult[SaleRecord] `json:"sales"`
	Charts   *analytics.Figure                       `json:"charts"`
	Warnings []string                                `json:"warnings"`
}

// Options returns the filter choices computed over every sale
func (s *DashboardService) Options(ctx context.Context) (*FilterOptions, error) {
	table, warnings, err := loadSales(ctx, s.saleRepo, s.log)
	if err != nil {
		return nil, err
	}

	opts := &FilterOptions{
		Categories: analytics.Distinct(table, analytics.ColCategory),
		Products:   analytics.Distinct(table, analytics.ColProduct),
		Clients:    analytics.Distinct(table, analytics.ColClient),
		Warnings:   nonNil(warnings),
	}
	if first, last := analytics.DateBounds(table); first != nil {
		from, to := first.Format(dateLayout), last.Format(dateLayout)
		opts.From, opts.To = &from, &to
	}
	return opts, nil
}

// Overview returns the KPIs, one page of filtered sales and the quick
// charts. An empty selection is not an error.
func (s *DashboardService) Overview(ctx context.Context, filter analytics.Filter, page pagination.PaginationParams) (*Overview, error) {
	table, warnings, err := loadSales(ctx, s.saleRepo, s.log)
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(table)

	byProduct := analytics.SalesByProduct(filtered)
	warnings = append(warnings, byProduct.Warnings...)

	return &Overview{
		KPIs:     analytics.Summarize(filtered),
		Sales:    pagination.Paginate(saleRecords(filtered), page),
		Charts:   byProduct.Figure,
		Warnings: nonNil(warnings),
	}, nil
}

// Export writes the filtered sales as a spreadsheet
func (s *DashboardService) Export(ctx context.Context, filter analytics.Filter, w io.Writer) error {
	table, _, err := loadSales(ctx, s.saleRepo, s.log)
	if err != nil {
		return err
	}
	records := saleRecords(filter.Apply(table))

	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = r.cells()
	}
	if err := export.WriteXLSX(w, analytics.SalesColumns, rows); err != nil {
		return err
	}

	s.log.WithField("rows", len(rows)).Info("sales exported")
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
