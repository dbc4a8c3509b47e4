package analytics

import "github.com/shopspring/decimal"

// KPIs are the headline figures of the overview.
type KPIs struct {
	TotalAmount   float64 `json:"total_ventes"`
	TotalQuantity float64 `json:"quantite_vendue"`
	AverageAmount float64 `json:"moyenne_par_vente"`
	Count         int     `json:"nombre_ventes"`
}

// Summarize computes the overview KPIs. The average skips missing amounts;
// every figure is zero on an empty table.
func Summarize(t *Table) KPIs {
	coerced, _ := CoerceNumeric(t, ColAmount, ColQuantity)
	var amount, quantity sum
	priced := 0
	for _, r := range coerced.rows {
		if r[ColAmount] != nil {
			priced++
		}
		amount.add(r[ColAmount])
		quantity.add(r[ColQuantity])
	}
	k := KPIs{
		TotalAmount:   amount.float(),
		TotalQuantity: quantity.float(),
		Count:         t.Len(),
	}
	if priced > 0 {
		k.AverageAmount = amount.d.Div(decimal.NewFromInt(int64(priced))).InexactFloat64()
	}
	return k
}

// SalesByProduct sums amount and quantity per product in first-seen order
// for the overview quick charts.
func SalesByProduct(t *Table) Report[ProductTotal] {
	rep := newReport[ProductTotal]()
	coerced, issues := CoerceNumeric(t, ColQuantity, ColAmount)
	rep.warn(coercionWarning(issues))

	totals := groupByProduct(coerced)
	if len(totals) == 0 {
		rep.warn("Aucune donnée disponible avec les filtres actuels.")
		return rep
	}
	rep.Rows = totals

	amount := productChart(KindBar, "Montant des ventes par produit", "Montant total (€)", totals,
		func(p ProductTotal) float64 { return p.Amount })
	quantity := productChart(KindBar, "Quantité vendue par produit", "Quantité totale", totals,
		func(p ProductTotal) float64 { return p.Quantity })
	rep.Figure = &Figure{Title: "Aperçu des ventes", Charts: []ChartSpec{amount, quantity}}
	return rep
}
