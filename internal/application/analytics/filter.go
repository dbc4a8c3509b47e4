package analytics

import (
	"sort"
	"time"
)

// Filter holds the sidebar selections. Every set predicate must match.
// An empty selection list matches everything.
type Filter struct {
	From       *time.Time
	To         *time.Time
	Categories []string
	Products   []string
	Clients    []string
}

// DateRangeActive reports whether the date predicate applies. A partial or
// inverted range falls back to the full observed range.
func (f Filter) DateRangeActive() bool {
	return f.From != nil && f.To != nil && !Day(*f.From).After(Day(*f.To))
}

// Apply returns the rows of t matching every predicate. Dates compare by
// calendar day, both ends inclusive. A sale with no client never matches a
// client selection.
func (f Filter) Apply(t *Table) *Table {
	var from, to time.Time
	dated := f.DateRangeActive()
	if dated {
		from, to = Day(*f.From), Day(*f.To)
	}
	cats := set(f.Categories)
	prods := set(f.Products)
	clients := set(f.Clients)

	return t.Where(func(r Row) bool {
		if dated {
			d, ok := dateOf(r[ColSaleDate])
			if !ok {
				return false
			}
			day := Day(d)
			if day.Before(from) || day.After(to) {
				return false
			}
		}
		return matches(cats, r[ColCategory]) && matches(prods, r[ColProduct]) && matches(clients, r[ColClient])
	})
}

func set(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func matches(selected map[string]struct{}, v any) bool {
	if selected == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, hit := selected[s]
	return hit
}

// DateBounds returns the first and last sale day of t, or nils when no row
// carries a readable date.
func DateBounds(t *Table) (first, last *time.Time) {
	for _, r := range t.rows {
		d, ok := dateOf(r[ColSaleDate])
		if !ok {
			continue
		}
		day := Day(d)
		if first == nil || day.Before(*first) {
			v := day
			first = &v
		}
		if last == nil || day.After(*last) {
			v := day
			last = &v
		}
	}
	return first, last
}

// Distinct returns the sorted distinct string values of a column. Missing
// values are left out.
func Distinct(t *Table, column string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range t.rows {
		s, ok := r[column].(string)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
