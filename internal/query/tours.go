// Package query translates list-endpoint query parameters into validated,
// bounded GORM query fragments.
package query

import (
	"math"    // Price rounding
	"net/url" // Query parameter access
	"strconv" // Numeric parsing
	"strings" // String manipulation
	"time"    // Date parsing

	"gorm.io/gorm" // GORM ORM library
)

// sortColumns is the static mapping from allowed sort keys to storage columns.
// Sort keys outside this map are rejected at parse time.
var sortColumns = map[string]string{
	"price": "price_in_cents",
}

// TourFilters holds the parsed filter and sort parameters for a tour listing
type TourFilters struct {
	PriceFrom *int64     // Lower price bound in cents, nil when absent
	PriceTo   *int64     // Upper price bound in cents, nil when absent
	DateFrom  *time.Time // Inclusive lower bound on starting_date
	DateTo    *time.Time // Inclusive upper bound on starting_date
	SortBy    string     // Requested sort key, empty when absent
	SortOrder string     // Requested sort direction, empty when absent
}

// ParseTourFilters validates the supported query parameters and returns the
// typed filter set. All violations are collected into the returned map; an
// empty map means the parameters are valid.
func ParseTourFilters(values url.Values) (TourFilters, map[string][]string) {
	var f TourFilters                 // Parsed filters
	errs := make(map[string][]string) // Parameter name -> reasons

	f.PriceFrom = parsePrice(values, "priceFrom", errs) // Lower price bound
	f.PriceTo = parsePrice(values, "priceTo", errs)     // Upper price bound
	f.DateFrom = parseDate(values, "dateFrom", errs)    // Lower date bound
	f.DateTo = parseDate(values, "dateTo", errs)        // Upper date bound

	// Sort key must come from the enumerated set
	if v := values.Get("sortBy"); v != "" {
		if _, ok := sortColumns[v]; !ok {
			errs["sortBy"] = append(errs["sortBy"], "The selected sortBy is invalid.")
		} else {
			f.SortBy = v
		}
	}
	// Sort direction is restricted to asc/desc
	if v := values.Get("sortOrder"); v != "" {
		if v != "asc" && v != "desc" {
			errs["sortOrder"] = append(errs["sortOrder"], "The selected sortOrder is invalid.")
		} else {
			f.SortOrder = v
		}
	}
	return f, errs
}

// parsePrice reads a major-unit numeric parameter and converts it to cents
func parsePrice(values url.Values, name string, errs map[string][]string) *int64 {
	v := values.Get(name)
	if v == "" {
		return nil // Parameter absent
	}
	major, err := strconv.ParseFloat(v, 64)
	if err != nil {
		errs[name] = append(errs[name], "The "+name+" field must be a number.")
		return nil
	}
	cents := int64(math.Round(major * 100)) // Compare in the stored minor-unit space
	return &cents
}

// parseDate reads a date parameter, accepting plain dates and RFC 3339 timestamps
func parseDate(values url.Values, name string, errs map[string][]string) *time.Time {
	v := values.Get(name)
	if v == "" {
		return nil // Parameter absent
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	// Fall back to a full timestamp; trim a space-separated variant first
	if t, err := time.Parse(time.RFC3339, strings.Replace(v, " ", "T", 1)); err == nil {
		return &t
	}
	errs[name] = append(errs[name], "The "+name+" field must be a valid date.")
	return nil
}

// ApplyFilters chains the present bounds onto the query in a fixed order
func (f TourFilters) ApplyFilters(q *gorm.DB) *gorm.DB {
	if f.PriceFrom != nil {
		q = q.Where("price_in_cents >= ?", *f.PriceFrom) // Price lower bound
	}
	if f.PriceTo != nil {
		q = q.Where("price_in_cents <= ?", *f.PriceTo) // Price upper bound
	}
	if f.DateFrom != nil {
		q = q.Where("starting_date >= ?", *f.DateFrom) // Start date lower bound
	}
	if f.DateTo != nil {
		q = q.Where("starting_date <= ?", *f.DateTo) // Start date upper bound
	}
	return q
}

// ApplySort orders the query. The custom sort only applies when both sortBy
// and sortOrder were supplied; starting_date ascending is always appended so
// the ordering is a deterministic total order.
func (f TourFilters) ApplySort(q *gorm.DB) *gorm.DB {
	if f.SortBy != "" && f.SortOrder != "" {
		q = q.Order(sortColumns[f.SortBy] + " " + f.SortOrder) // Requested primary sort
	}
	return q.Order("starting_date asc") // Unconditional secondary ordering
}
