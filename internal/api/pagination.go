package api

import (
	"strconv" // Page parameter parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// pagination carries the resolved paging window for a list request
type pagination struct {
	Page     int   // Current 1-indexed page
	PerPage  int   // Records per page
	LastPage int   // Highest page number, at least 1
	Total    int64 // Total matching records
}

// newPagination resolves the page query parameter against the total count.
// Invalid or missing page values fall back to page 1; pages beyond the end
// are kept as requested so they return an empty slice with consistent meta.
func newPagination(c *gin.Context, perPage int, total int64) pagination {
	page := 1 // Default page
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v // Set page if valid
	}
	// Calculate the last page, clamped to at least 1
	lastPage := (int(total) + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	return pagination{Page: page, PerPage: perPage, LastPage: lastPage, Total: total}
}

// Offset returns the record offset for the current page
func (p pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// pageURL rebuilds the request URL pointing at the given page, keeping the
// other query parameters intact
func pageURL(c *gin.Context, page int) string {
	u := *c.Request.URL // Copy so the original request is untouched
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return "http://" + c.Request.Host + u.Path + "?" + u.RawQuery
}

// envelope wraps a page of records in the data/links/meta response shape
func envelope(c *gin.Context, p pagination, count int, data any) gin.H {
	var prev, next any // Navigation links, null at the edges
	if p.Page > 1 {
		prev = pageURL(c, p.Page-1)
	}
	if p.Page < p.LastPage {
		next = pageURL(c, p.Page+1)
	}
	var from, to any // Record window bounds, null when the page is empty
	if count > 0 {
		from = p.Offset() + 1
		to = p.Offset() + count
	}
	return gin.H{
		"data": data, // Records for the requested page
		"links": gin.H{
			"first": pageURL(c, 1),          // First page link
			"last":  pageURL(c, p.LastPage), // Last page link
			"prev":  prev,                   // Previous page link or null
			"next":  next,                   // Next page link or null
		},
		"meta": gin.H{
			"current_page": p.Page,                                 // Current page number
			"from":         from,                                   // First record index on this page
			"last_page":    p.LastPage,                             // Last page number
			"path":         "http://" + c.Request.Host + c.Request.URL.Path, // Base path of the listing
			"per_page":     p.PerPage,                              // Page size
			"to":           to,                                     // Last record index on this page
			"total":        p.Total,                                // Total matching records
		},
	}
}
