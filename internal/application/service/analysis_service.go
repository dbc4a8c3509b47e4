package service

import (
	"context"
	"errors"

	"github.com/sangkips/ventes-dashboard/internal/application/analytics"
	"github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"github.com/sirupsen/logrus"
)

// DefaultTopProducts is the number of products ranked when none is asked
const DefaultTopProducts = 5

// AnalysisService runs the in-depth analyses on the filtered sales
type AnalysisService struct {
	saleRepo repository.SaleRepository
	log      logrus.FieldLogger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(saleRepo repository.SaleRepository, log logrus.FieldLogger) *AnalysisService {
	return &AnalysisService{
		saleRepo: saleRepo,
		log:      log,
	}
}

// Period aggregates the filtered sales by month, quarter or year
func (s *AnalysisService) Period(ctx context.Context, filter analytics.Filter, granularity string) (*analytics.Report[analytics.PeriodTotal], error) {
	g, err := analytics.ParseGranularity(granularity)
	if err != nil {
		return nil, asValidationError(err)
	}
	return runAnalysis(ctx, s, filter, "period", func(t *analytics.Table) (analytics.Report[analytics.PeriodTotal], error) {
		return analytics.AggregateByPeriod(t, g)
	})
}

// TopProducts ranks the n best selling products by quantity
func (s *AnalysisService) TopProducts(ctx context.Context, filter analytics.Filter, n int) (*analytics.Report[analytics.ProductTotal], error) {
	return runAnalysis(ctx, s, filter, "top_products", func(t *analytics.Table) (analytics.Report[analytics.ProductTotal], error) {
		return analytics.TopProducts(t, n)
	})
}

// Distribution splits the filtered amount by category or by client
func (s *AnalysisService) Distribution(ctx context.Context, filter analytics.Filter, by string) (*analytics.Report[analytics.GroupTotal], error) {
	dim, err := analytics.ParseDimension(by)
	if err != nil {
		return nil, asValidationError(err)
	}
	return runAnalysis(ctx, s, filter, "distribution", func(t *analytics.Table) (analytics.Report[analytics.GroupTotal], error) {
		return analytics.Distribution(t, dim)
	})
}

func runAnalysis[T any](
	ctx context.Context,
	s *AnalysisService,
	filter analytics.Filter,
	name string,
	analyse func(*analytics.Table) (analytics.Report[T], error),
) (*analytics.Report[T], error) {
	table, warnings, err := loadSales(ctx, s.saleRepo, s.log)
	if err != nil {
		return nil, err
	}

	report, err := analyse(filter.Apply(table))
	if err != nil {
		s.log.WithFields(logrus.Fields{"analysis": name, "error": err.Error()}).Info("analysis rejected")
		return nil, asValidationError(err)
	}
	for _, w := range report.Warnings {
		s.log.WithFields(logrus.Fields{"analysis": name, "warning": w}).Warn("analysis warning")
	}
	report.Warnings = nonNil(append(warnings, report.Warnings...))
	return &report, nil
}

func asValidationError(err error) error {
	var verr *analytics.ValidationError
	if errors.As(err, &verr) {
		return apperror.NewValidationError(verr.Reason)
	}
	return err
}
