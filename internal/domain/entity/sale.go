package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records one sale line. Amount is quantity times the product unit
// price at entry time and is stored, never recomputed.
type Sale struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleDate  time.Time       `gorm:"column:date_vente;type:date;not null" json:"date_vente"`
	ProductID uint            `gorm:"column:produit_id;not null;index" json:"produit_id"`
	ClientID  *uint           `gorm:"column:client_id;index" json:"client_id,omitempty"`
	Quantity  int             `gorm:"column:quantite;not null" json:"quantite"`
	Amount    decimal.Decimal `gorm:"column:montant;type:numeric(12,2);not null" json:"montant"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
	Client  *Client  `gorm:"foreignKey:ClientID" json:"-"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "ventes"
}

// SaleView is one row of the joined sales listing. SaleDate keeps the raw
// store representation so that unreadable dates can be reported instead of
// failing the whole read.
type SaleView struct {
	ID       uint            `gorm:"column:id"`
	SaleDate string          `gorm:"column:date_vente"`
	Product  string          `gorm:"column:produit"`
	Category string          `gorm:"column:categorie"`
	Client   *string         `gorm:"column:client"`
	Quantity int64           `gorm:"column:quantite"`
	Amount   decimal.Decimal `gorm:"column:montant"`
}
