// Package analytics holds the reporting engine of the sales dashboard: an
// in-memory sales table, conjunctive filters, and the aggregations behind
// the overview and analysis views. Nothing here touches the store.
package analytics

import "encoding/json"

// Column names of the sales table, as returned by the joined sales listing.
const (
	ColID       = "id"
	ColSaleDate = "date_vente"
	ColProduct  = "produit"
	ColCategory = "categorie"
	ColClient   = "client"
	ColQuantity = "quantite"
	ColAmount   = "montant"
)

// SalesColumns is the column order of a full sales table.
var SalesColumns = []string{ColID, ColSaleDate, ColProduct, ColCategory, ColClient, ColQuantity, ColAmount}

// Row maps a column name to its value. A nil value is the missing marker.
type Row map[string]any

// Table is an ordered set of columns over loosely typed rows. Rows may
// omit a column; reading it yields nil.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// HasColumn reports whether name is one of the table columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the names among required that the table lacks,
// in the order given.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, c := range required {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Rows returns the rows. Callers must not modify them.
func (t *Table) Rows() []Row {
	return t.rows
}

// Append adds a row. Keys outside the table columns are ignored by every
// operation of this package.
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Where returns a table with the same columns holding the rows for which
// keep is true.
func (t *Table) Where(keep func(Row) bool) *Table {
	out := NewTable(t.columns...)
	for _, r := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// clone copies every row so coercion never writes through to the caller.
func (t *Table) clone() *Table {
	out := NewTable(t.columns...)
	out.rows = make([]Row, len(t.rows))
	for i, r := range t.rows {
		c := make(Row, len(r))
		for k, v := range r {
			c[k] = v
		}
		out.rows[i] = c
	}
	return out
}

// MarshalJSON renders the table as its columns and rows.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := t.rows
	if rows == nil {
		rows = []Row{}
	}
	return json.Marshal(struct {
		Columns []string `json:"columns"`
		Rows    []Row    `json:"rows"`
	}{t.columns, rows})
}
