package domain

// SearchQuery carries pagination and filtering for catalog listings.
type SearchQuery struct {
	Page      int
	PerPage   int
	Term      string
	Sort      string
	Direction string
}

// Limit returns the page size, falling back to 15 when unset
func (q SearchQuery) Limit() int {
	if q.PerPage <= 0 {
		return 15
	}
	return q.PerPage
}

// Offset returns the row offset for the requested page
func (q SearchQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit()
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int64
	Items       []T
}
