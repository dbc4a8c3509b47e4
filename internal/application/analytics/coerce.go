package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CoercionIssue describes a value replaced by the missing marker.
type CoercionIssue struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (i CoercionIssue) String() string {
	return fmt.Sprintf("ligne %d, %s: %s", i.Row, i.Field, i.Reason)
}

// CoerceNumeric returns a copy of t where every value of the given columns
// is a float64 or nil. Values that cannot be read as a finite number become
// nil and are reported. Columns absent from t are skipped. A value that is
// already missing is not an issue.
func CoerceNumeric(t *Table, columns ...string) (*Table, []CoercionIssue) {
	out := t.clone()
	var issues []CoercionIssue
	for _, col := range columns {
		if !out.HasColumn(col) {
			continue
		}
		for i, r := range out.rows {
			v, ok := r[col]
			if !ok || v == nil {
				r[col] = nil
				continue
			}
			f, reason := toFloat(v)
			if reason != "" {
				r[col] = nil
				issues = append(issues, CoercionIssue{Row: i, Field: col, Reason: reason})
				continue
			}
			r[col] = f
		}
	}
	return out, issues
}

func toFloat(v any) (float64, string) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case decimal.Decimal:
		f = n.InexactFloat64()
	case *decimal.Decimal:
		if n == nil {
			return 0, "valeur manquante"
		}
		f = n.InexactFloat64()
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, fmt.Sprintf("valeur non numérique %q", n.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Sprintf("valeur non numérique %q", n)
		}
		f = parsed
	default:
		return 0, fmt.Sprintf("type non numérique %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, "valeur non finie"
	}
	return f, ""
}

// coercionWarning folds issues into a single user-facing warning.
func coercionWarning(issues []CoercionIssue) string {
	if len(issues) == 0 {
		return ""
	}
	return fmt.Sprintf("Certaines valeurs numériques sont invalides et ont été ignorées (%d valeur(s))", len(issues))
}

// sum accumulates float64 values as decimals so that partial sums add up to
// the grand total. Missing values are skipped.
type sum struct {
	d decimal.Decimal
}

func (s *sum) add(v any) {
	if f, ok := v.(float64); ok {
		s.d = s.d.Add(decimal.NewFromFloat(f))
	}
}

func (s sum) float() float64 {
	return s.d.InexactFloat64()
}
