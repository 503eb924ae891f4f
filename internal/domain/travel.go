package domain

// Travel Model
type Travel struct {
	ID           uint   `gorm:"primaryKey"`      // Primary key
	Name         string `gorm:"not null"`        // Display name
	Slug         string `gorm:"unique;not null"` // URL identifier derived from name, immutable after creation
	Description  string // Optional description
	IsPublic     bool   `gorm:"not null;default:false"` // Only public travels are listed
	NumberOfDays int    `gorm:"not null"`               // Duration in days
	Tours        []Tour `gorm:"constraint:OnUpdate:CASCADE;"` // Tours owned by this travel
}
