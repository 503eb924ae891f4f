package db

import (
	"os"      // Admin bootstrap credentials
	"strings" // Email normalization

	"travel_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema and seeds reference data
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Role{}, &domain.Travel{}, &domain.Tour{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the static roles
	if err := SeedRoles(db); err != nil {
		logrus.Fatalf("role seeding failed: %v", err) // Log fatal error if seeding fails
	}
	// Create the initial admin user when bootstrap credentials are configured
	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if err := SeedAdminUser(db, email, password); err != nil {
			logrus.Fatalf("admin bootstrap failed: %v", err) // Log fatal error if bootstrap fails
		}
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedRoles inserts the admin and editor roles if they are missing
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{domain.RoleAdmin, domain.RoleEditor} {
		// FirstOrCreate keeps seeding idempotent across repeated runs
		if err := db.Where(domain.Role{Name: name}).FirstOrCreate(&domain.Role{Name: name}).Error; err != nil {
			return err // Return error if insert fails
		}
	}
	return nil
}

// SeedAdminUser creates a user with the admin role unless the email is already taken
func SeedAdminUser(db *gorm.DB, email, password string) error {
	email = strings.ToLower(email) // Emails are stored lowercase
	var count int64                // Existing user count for this email
	if err := db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err // Return error if lookup fails
	}
	if count > 0 {
		return nil // User already exists, nothing to do
	}
	// Hash the bootstrap password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err // Return error if hashing fails
	}
	var adminRole domain.Role // Admin role record
	if err := db.Where("name = ?", domain.RoleAdmin).First(&adminRole).Error; err != nil {
		return err // Return error if the role is missing
	}
	// Create the user with the admin role attached
	user := domain.User{Email: email, Password: string(hash), Roles: []domain.Role{adminRole}}
	return db.Create(&user).Error
}
