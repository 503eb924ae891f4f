package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`           // Primary key
	Email    string `gorm:"unique;not null"`      // Unique email, stored lowercase
	Password string `gorm:"not null"`             // Hashed password
	Roles    []Role `gorm:"many2many:role_user;"` // Roles via role_user pivot table
}

// HasAnyRole reports whether the user holds at least one of the given role names
func (u *User) HasAnyRole(names ...string) bool {
	// Check each assigned role against the required names
	for _, r := range u.Roles {
		for _, n := range names {
			if r.Name == n {
				return true // Role requirement satisfied
			}
		}
	}
	return false // No matching role found
}
