package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a single record in the inventory.
// The identifier and creation date are assigned by the store and never change.
type Product struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	DateAdded   time.Time       `gorm:"not null"`
}

func (p *Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the identifier and the creation timestamp.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.DateAdded.IsZero() {
		p.DateAdded = time.Now().UTC()
	}
	return nil
}
