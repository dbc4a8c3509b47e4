package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Granularity is the calendar period used to bucket sales.
type Granularity string

const (
	Month   Granularity = "month"
	Quarter Granularity = "quarter"
	Year    Granularity = "year"
)

// ParseGranularity accepts the English names and the French labels of the
// dashboard (mensuel, trimestriel, annuel).
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month", "mensuel":
		return Month, nil
	case "quarter", "trimestriel":
		return Quarter, nil
	case "year", "annuel":
		return Year, nil
	}
	return "", validationErrorf("Période inconnue: %q (month, quarter ou year)", s)
}

func (g Granularity) title() string {
	switch g {
	case Quarter:
		return "Ventes trimestrielles"
	case Year:
		return "Ventes annuelles"
	default:
		return "Ventes mensuelles"
	}
}

type periodKey struct {
	year int
	sub  int
}

func (g Granularity) key(t time.Time) periodKey {
	switch g {
	case Quarter:
		return periodKey{t.Year(), (int(t.Month())-1)/3 + 1}
	case Year:
		return periodKey{t.Year(), 0}
	default:
		return periodKey{t.Year(), int(t.Month())}
	}
}

func (g Granularity) label(k periodKey) string {
	switch g {
	case Quarter:
		return fmt.Sprintf("%dQ%d", k.year, k.sub)
	case Year:
		return fmt.Sprintf("%d", k.year)
	default:
		return fmt.Sprintf("%d-%02d", k.year, k.sub)
	}
}

// PeriodTotal is one bucket of AggregateByPeriod.
type PeriodTotal struct {
	Period   string  `json:"periode"`
	Amount   float64 `json:"montant"`
	Quantity float64 `json:"quantite"`
}

// AggregateByPeriod buckets sales by the calendar period of their date and
// sums amount and quantity per bucket. Only observed periods appear, in
// chronological order. Rows with an unreadable date are dropped with a
// warning.
func AggregateByPeriod(t *Table, g Granularity) (Report[PeriodTotal], error) {
	rep := newReport[PeriodTotal]()
	if g != Month && g != Quarter && g != Year {
		return rep, validationErrorf("Période inconnue: %q (month, quarter ou year)", string(g))
	}
	if missing := t.MissingColumns(ColSaleDate, ColAmount); len(missing) > 0 {
		return rep, validationErrorf("Colonnes manquantes: %s", strings.Join(missing, ", "))
	}

	coerced, issues := CoerceNumeric(t, ColAmount, ColQuantity)
	rep.warn(coercionWarning(issues))

	type bucket struct {
		amount, quantity sum
	}
	buckets := make(map[periodKey]*bucket)
	var keys []periodKey
	dropped := 0
	for _, r := range coerced.rows {
		d, ok := dateOf(r[ColSaleDate])
		if !ok {
			dropped++
			continue
		}
		k := g.key(d)
		b, seen := buckets[k]
		if !seen {
			b = &bucket{}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.amount.add(r[ColAmount])
		b.quantity.add(r[ColQuantity])
	}
	if dropped > 0 {
		rep.warn(fmt.Sprintf("%d vente(s) ignorée(s): date de vente illisible", dropped))
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].sub < keys[j].sub
	})

	chart := ChartSpec{
		Kind:   KindBar,
		Title:  g.title(),
		XLabel: "Période",
		YLabel: "Montant total",
		Labels: make([]string, 0, len(keys)),
		Values: make([]float64, 0, len(keys)),
	}
	for _, k := range keys {
		b := buckets[k]
		row := PeriodTotal{Period: g.label(k), Amount: b.amount.float(), Quantity: b.quantity.float()}
		rep.Rows = append(rep.Rows, row)
		chart.Labels = append(chart.Labels, row.Period)
		chart.Values = append(chart.Values, row.Amount)
	}
	rep.Figure = &Figure{Title: g.title(), Charts: []ChartSpec{chart}}
	return rep, nil
}
