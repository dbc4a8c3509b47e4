package entity

// Client represents a buyer. Only the name is required.
type Client struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"column:nom;not null" json:"nom"`
	Email *string `gorm:"column:email" json:"email,omitempty"`
	Phone *string `gorm:"column:telephone" json:"telephone,omitempty"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
