// Package render draws analytics figures as standalone HTML pages.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sangkips/ventes-dashboard/internal/application/analytics"
)

// ErrNoFigure is returned when there is nothing to draw
var ErrNoFigure = errors.New("render: no figure")

// Figure writes fig as an HTML page with one chart per spec
func Figure(w io.Writer, fig *analytics.Figure) error {
	if fig == nil || len(fig.Charts) == 0 {
		return ErrNoFigure
	}

	page := components.NewPage()
	for _, spec := range fig.Charts {
		c, err := chart(spec)
		if err != nil {
			return err
		}
		page.AddCharts(c)
	}
	return page.Render(w)
}

func chart(spec analytics.ChartSpec) (components.Charter, error) {
	switch spec.Kind {
	case analytics.KindBar, analytics.KindBarH:
		return bar(spec), nil
	case analytics.KindPie:
		return pie(spec), nil
	}
	return nil, fmt.Errorf("render: unsupported chart kind %q", spec.Kind)
}

func bar(spec analytics.ChartSpec) *charts.Bar {
	b := charts.NewBar()
	b.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YLabel}),
	)

	data := make([]opts.BarData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.BarData{Value: v}
	}
	b.SetXAxis(spec.Labels).AddSeries(seriesName(spec), data)

	// Labels run along the vertical axis of a horizontal bar chart.
	if spec.Kind == analytics.KindBarH {
		b.XYReversal()
	}
	return b
}

// pie folds the share label of each slice into its name. Empty labels
// leave the slice name alone.
func pie(spec analytics.ChartSpec) *charts.Pie {
	p := charts.NewPie()
	p.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: spec.Title}))

	data := make([]opts.PieData, len(spec.Values))
	for i, v := range spec.Values {
		name := spec.Labels[i]
		if i < len(spec.ValueLabels) && spec.ValueLabels[i] != "" {
			name = fmt.Sprintf("%s (%s)", name, spec.ValueLabels[i])
		}
		data[i] = opts.PieData{Name: name, Value: v}
	}
	p.AddSeries(seriesName(spec), data)
	return p
}

func seriesName(spec analytics.ChartSpec) string {
	if spec.Kind == analytics.KindBarH && spec.XLabel != "" {
		return spec.XLabel
	}
	if spec.YLabel != "" {
		return spec.YLabel
	}
	return spec.Title
}
