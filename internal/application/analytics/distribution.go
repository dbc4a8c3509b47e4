package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Dimension is the column a distribution groups by.
type Dimension string

const (
	Category Dimension = ColCategory
	Client   Dimension = ColClient
)

const (
	maxClients  = 10
	maxPieSlice = 15
)

// ParseDimension accepts "categorie" and "client", and the English
// "category".
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "categorie", "category", "":
		return Category, nil
	case "client":
		return Client, nil
	}
	return "", validationErrorf("Répartition inconnue: %q (categorie ou client)", s)
}

func (d Dimension) title() string {
	if d == Client {
		return fmt.Sprintf("Top %d clients par montant", maxClients)
	}
	return "Répartition par catégorie"
}

// GroupTotal is the amount summed for one category or client.
type GroupTotal struct {
	Dimension Dimension
	Key       string
	Amount    float64
}

// MarshalJSON keys the group by its dimension name, as in
// {"categorie":"X","montant":20}.
func (g GroupTotal) MarshalJSON() ([]byte, error) {
	dim := g.Dimension
	if dim == "" {
		dim = Category
	}
	return json.Marshal(map[string]any{string(dim): g.Key, ColAmount: g.Amount})
}

// Distribution sums amounts per category or per client. Categories keep
// first-seen order; clients are ranked by amount and only the first ten are
// kept. Sales with no client are skipped.
func Distribution(t *Table, by Dimension) (Report[GroupTotal], error) {
	rep := newReport[GroupTotal]()
	if by != Category && by != Client {
		return rep, validationErrorf("Répartition inconnue: %q (categorie ou client)", string(by))
	}
	if t.Empty() || !t.HasColumn(ColAmount) {
		return rep, validationErrorf("La table est vide ou ne contient pas de colonne '%s'", ColAmount)
	}
	if !t.HasColumn(string(by)) {
		return rep, validationErrorf("La colonne '%s' n'existe pas dans la table", by)
	}

	coerced, issues := CoerceNumeric(t, ColAmount)
	rep.warn(coercionWarning(issues))

	index := make(map[string]*sum)
	var order []string
	for _, r := range coerced.rows {
		key, ok := r[string(by)].(string)
		if !ok {
			continue
		}
		s, seen := index[key]
		if !seen {
			s = &sum{}
			index[key] = s
			order = append(order, key)
		}
		s.add(r[ColAmount])
	}

	groups := make([]GroupTotal, 0, len(order))
	for _, k := range order {
		groups = append(groups, GroupTotal{Dimension: by, Key: k, Amount: index[k].float()})
	}
	if by == Client {
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Amount > groups[j].Amount })
		if len(groups) > maxClients {
			groups = groups[:maxClients]
		}
	}
	if len(groups) == 0 {
		return rep, validationErrorf("Aucune donnée à afficher après regroupement")
	}
	rep.Rows = groups

	title := by.title()
	fig := &Figure{Title: title}
	if len(groups) <= maxPieSlice {
		fig.Charts = append(fig.Charts, pieChart(title+" (en %)", groups))
	}

	desc := append([]GroupTotal(nil), groups...)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].Amount > desc[j].Amount })
	bar := ChartSpec{
		Kind:   KindBar,
		Title:  title + " (en valeur absolue)",
		YLabel: "Montant total",
		Labels: make([]string, len(desc)),
		Values: make([]float64, len(desc)),
	}
	for i, g := range desc {
		bar.Labels[i] = g.Key
		bar.Values[i] = g.Amount
	}
	fig.Charts = append(fig.Charts, bar)
	rep.Figure = fig
	return rep, nil
}

// pieChart labels each slice with its share, leaving slices under 1% blank.
func pieChart(title string, groups []GroupTotal) ChartSpec {
	c := ChartSpec{
		Kind:        KindPie,
		Title:       title,
		Labels:      make([]string, len(groups)),
		Values:      make([]float64, len(groups)),
		ValueLabels: make([]string, len(groups)),
	}
	var total float64
	for _, g := range groups {
		total += g.Amount
	}
	for i, g := range groups {
		c.Labels[i] = g.Key
		c.Values[i] = g.Amount
		if total <= 0 {
			continue
		}
		if pct := g.Amount / total * 100; pct >= 1 {
			c.ValueLabels[i] = fmt.Sprintf("%.1f%%", pct)
		}
	}
	return c
}
