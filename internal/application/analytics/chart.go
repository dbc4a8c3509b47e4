package analytics

// ChartKind selects how a chart is drawn.
type ChartKind string

const (
	KindBar  ChartKind = "bar"
	KindBarH ChartKind = "barh"
	KindPie  ChartKind = "pie"
)

// ChartSpec describes one chart. Rendering is left to the presentation layer.
// For a horizontal bar chart the labels run along the vertical axis.
type ChartSpec struct {
	Kind        ChartKind `json:"kind"`
	Title       string    `json:"title"`
	XLabel      string    `json:"x_label,omitempty"`
	YLabel      string    `json:"y_label,omitempty"`
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	ValueLabels []string  `json:"value_labels,omitempty"`
}

// Figure groups the charts produced by one analysis.
type Figure struct {
	Title  string      `json:"title"`
	Charts []ChartSpec `json:"charts"`
}

// Report is the result of an analysis: an optional figure, the aggregated
// rows and the warnings raised while computing them.
type Report[T any] struct {
	Figure   *Figure  `json:"figure"`
	Rows     []T      `json:"rows"`
	Warnings []string `json:"warnings"`
}

func (r *Report[T]) warn(msg string) {
	if msg != "" {
		r.Warnings = append(r.Warnings, msg)
	}
}

func newReport[T any]() Report[T] {
	return Report[T]{Rows: []T{}, Warnings: []string{}}
}
