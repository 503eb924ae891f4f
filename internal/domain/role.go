package domain

// Role names seeded by migration
const (
	RoleAdmin  = "admin"  // Full write access
	RoleEditor = "editor" // May update travels
)

// Role Model
type Role struct {
	ID   uint   `gorm:"primaryKey"`      // Primary key
	Name string `gorm:"unique;not null"` // Role name: admin or editor
}
