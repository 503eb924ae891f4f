package domain

import (
	"fmt"  // Price formatting
	"time" // Tour dates
)

// Tour Model
type Tour struct {
	ID           uint      `gorm:"primaryKey"`     // Primary key
	TravelID     uint      `gorm:"not null;index"` // Foreign key to the owning Travel
	Name         string    `gorm:"not null"`       // Display name
	StartingDate time.Time `gorm:"not null"`       // First day of the tour
	EndingDate   time.Time `gorm:"not null"`       // Last day, never before StartingDate
	PriceInCents int64     `gorm:"not null"`       // Price in minor currency units
}

// Price renders the stored cents as a two-decimal major-unit string (12345 -> "123.45")
func (t *Tour) Price() string {
	return fmt.Sprintf("%d.%02d", t.PriceInCents/100, t.PriceInCents%100)
}
