package analytics

import (
	"fmt"
	"sort"
	"strings"
)

// ProductTotal is the quantity and amount sold for one product.
type ProductTotal struct {
	Product  string  `json:"produit"`
	Quantity float64 `json:"quantite"`
	Amount   float64 `json:"montant"`
}

// groupByProduct sums quantity and amount per product name in first-seen
// order. Rows with no product are skipped. t must already be coerced.
func groupByProduct(t *Table) []ProductTotal {
	type acc struct {
		quantity, amount sum
	}
	index := make(map[string]*acc)
	var order []string
	for _, r := range t.rows {
		name, ok := r[ColProduct].(string)
		if !ok {
			continue
		}
		a, seen := index[name]
		if !seen {
			a = &acc{}
			index[name] = a
			order = append(order, name)
		}
		a.quantity.add(r[ColQuantity])
		a.amount.add(r[ColAmount])
	}
	out := make([]ProductTotal, 0, len(order))
	for _, name := range order {
		a := index[name]
		out = append(out, ProductTotal{Product: name, Quantity: a.quantity.float(), Amount: a.amount.float()})
	}
	return out
}

// TopProducts ranks products by quantity sold and keeps the first n. Ties
// keep first-seen order. An empty grouped result is not an error: the
// report carries no figure and a single warning.
func TopProducts(t *Table, n int) (Report[ProductTotal], error) {
	rep := newReport[ProductTotal]()
	if missing := t.MissingColumns(ColProduct, ColQuantity, ColAmount); len(missing) > 0 {
		return rep, validationErrorf("Colonnes manquantes: %s", strings.Join(missing, ", "))
	}
	if n < 1 {
		return rep, validationErrorf("Le nombre de produits doit être au moins 1 (reçu %d)", n)
	}

	coerced, issues := CoerceNumeric(t, ColQuantity, ColAmount)
	rep.warn(coercionWarning(issues))

	totals := groupByProduct(coerced)
	if len(totals) == 0 {
		rep.warn("Aucune donnée disponible pour le graphique")
		return rep, nil
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Quantity > totals[j].Quantity
	})
	if len(totals) > n {
		totals = totals[:n]
	}
	rep.Rows = totals

	byQuantity := append([]ProductTotal(nil), totals...)
	sort.SliceStable(byQuantity, func(i, j int) bool {
		return byQuantity[i].Quantity < byQuantity[j].Quantity
	})
	byAmount := append([]ProductTotal(nil), totals...)
	sort.SliceStable(byAmount, func(i, j int) bool {
		return byAmount[i].Amount < byAmount[j].Amount
	})

	rep.Figure = &Figure{
		Title: fmt.Sprintf("Top %d produits", n),
		Charts: []ChartSpec{
			productChart(KindBarH, fmt.Sprintf("Top %d produits (quantité)", n), "Quantité vendue", byQuantity,
				func(p ProductTotal) float64 { return p.Quantity }),
			productChart(KindBarH, fmt.Sprintf("Top %d produits (montant)", n), "Montant total", byAmount,
				func(p ProductTotal) float64 { return p.Amount }),
		},
	}
	return rep, nil
}

func productChart(kind ChartKind, title, valueLabel string, rows []ProductTotal, value func(ProductTotal) float64) ChartSpec {
	c := ChartSpec{
		Kind:   kind,
		Title:  title,
		Labels: make([]string, len(rows)),
		Values: make([]float64, len(rows)),
	}
	if kind == KindBarH {
		c.XLabel = valueLabel
	} else {
		c.YLabel = valueLabel
	}
	for i, r := range rows {
		c.Labels[i] = r.Product
		c.Values[i] = value(r)
	}
	return c
}
