package domain

import "time"

// AuditFields holds the timestamps maintained for every stored entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SortDirection is the ordering applied to a paginated query.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageRequest describes a 0-based page of results.
// SortBy holds a resolved column name, never raw user input.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir SortDirection
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results together with the total number of matching rows.
type Page[T any] struct {
	Items         []T
	Number        int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages needed to hold TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext reports whether a page exists after this one.
func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// HasPrevious reports whether a page exists before this one.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}

// NewPage builds a Page, normalising a nil slice to an empty one.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Number: req.Page, Size: req.Size, TotalElements: total}
}

// MapPage converts the items of a page while keeping its pagination metadata.
func MapPage[T, U any](p Page[T], f func(T) U) Page[U] {
	out := make([]U, len(p.Items))
	for i, item := range p.Items {
		out[i] = f(item)
	}
	return Page[U]{Items: out, Number: p.Number, Size: p.Size, TotalElements: p.TotalElements}
}
