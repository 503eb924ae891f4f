package utils

import (
	"strconv" // Suffix formatting
	"strings" // String building
	"unicode" // Rune classification

	"gorm.io/gorm" // GORM ORM library
)

// Slugify lowercases the name and replaces runs of non-alphanumeric runes with
// a single dash (e.g. "First travel!" -> "first-travel")
func Slugify(name string) string {
	var b strings.Builder // Slug under construction
	dash := false         // Whether a separator is pending
	for _, r := range strings.ToLower(name) {
		// Keep letters and digits, fold everything else into one dash
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			// Emit at most one pending separator between words
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		} else {
			dash = true // Collapse repeated separators
		}
	}
	return b.String()
}

// UniqueSlug derives a slug from the name and appends a numeric suffix until
// no existing travel uses it ("my-trip", "my-trip-2", "my-trip-3", ...)
func UniqueSlug(db *gorm.DB, name string) (string, error) {
	base := Slugify(name) // Candidate before disambiguation
	slug := base
	// Probe for collisions, bumping the suffix each round
	for i := 2; ; i++ {
		var count int64 // Travels already holding this slug
		if err := db.Table("travels").Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err // Return error if the probe fails
		}
		if count == 0 {
			return slug, nil // Slug is free
		}
		slug = base + "-" + strconv.Itoa(i) // Try the next suffixed candidate
	}
}
