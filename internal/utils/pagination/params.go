package pagination

import (
	"strings"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
)

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)

// SortColumns maps the sort keys accepted from callers to storage column names.
type SortColumns map[string]string

// Resolve returns the column for key, falling back to the column of fallbackKey
// when key is empty or unknown.
func (s SortColumns) Resolve(key, fallbackKey string) string {
	if col, ok := s[strings.TrimSpace(key)]; ok {
		return col
	}
	return s[fallbackKey]
}

// ParseDirection reads a sort direction, returning def for anything other than asc or desc.
func ParseDirection(dir string, def domain.SortDirection) domain.SortDirection {
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case string(domain.SortAsc):
		return domain.SortAsc
	case string(domain.SortDesc):
		return domain.SortDesc
	default:
		return def
	}
}

// Normalize clamps page and size into their accepted ranges.
func Normalize(page, size int) (int, int) {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return page, size
}

// NewRequest builds a normalised page request whose SortBy is always a whitelisted column.
func NewRequest(page, size int, sortBy, sortDir string, columns SortColumns, defaultKey string, defaultDir domain.SortDirection) domain.PageRequest {
	page, size = Normalize(page, size)
	return domain.PageRequest{
		Page:    page,
		Size:    size,
		SortBy:  columns.Resolve(sortBy, defaultKey),
		SortDir: ParseDirection(sortDir, defaultDir),
	}
}
