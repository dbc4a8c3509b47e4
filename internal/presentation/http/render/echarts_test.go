package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sangkips/ventes-dashboard/internal/application/analytics"
)

func TestFigureRendersEveryChart(t *testing.T) {
	fig := &analytics.Figure{
		Title: "Répartition par catégorie",
		Charts: []analytics.ChartSpec{
			{Kind: analytics.KindPie, Title: "pie", Labels: []string{"X", "Y"}, Values: []float64{20, 50}, ValueLabels: []string{"28.6%", "71.4%"}},
			{Kind: analytics.KindBar, Title: "bar", YLabel: "Montant total", Labels: []string{"Y", "X"}, Values: []float64{50, 20}},
			{Kind: analytics.KindBarH, Title: "barh", XLabel: "Quantité vendue", Labels: []string{"A", "B"}, Values: []float64{2, 5}},
		},
	}
	var buf bytes.Buffer
	if err := Figure(&buf, fig); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "echarts.init("); got != 3 {
		t.Fatalf("rendered %d charts, want 3", got)
	}
}

func TestFigureRejectsEmpty(t *testing.T) {
	if err := Figure(&bytes.Buffer{}, nil); !errors.Is(err, ErrNoFigure) {
		t.Fatalf("err = %v, want ErrNoFigure", err)
	}
	bad := &analytics.Figure{Charts: []analytics.ChartSpec{{Kind: "scatter"}}}
	if err := Figure(&bytes.Buffer{}, bad); err == nil {
		t.Fatal("unsupported kind accepted")
	}
}
