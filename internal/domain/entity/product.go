package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product represents an item that can be sold
type Product struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"column:nom;not null" json:"nom"`
	Category  string          `gorm:"column:categorie;not null" json:"categorie"`
	UnitPrice decimal.Decimal `gorm:"column:prix_unitaire;type:numeric(12,2);not null" json:"prix_unitaire"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "produits"
}

// ProductJSON is a helper struct for JSON marshaling with a decimal price
type ProductJSON struct {
	ID        uint    `json:"id"`
	Name      string  `json:"nom"`
	Category  string  `json:"categorie"`
	UnitPrice float64 `json:"prix_unitaire"`
}

// MarshalJSON renders the unit price as a JSON number
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.UnitPrice.InexactFloat64(),
	})
}
