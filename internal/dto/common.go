package dto

import (
	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Data       any                 `json:"data,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
	Errors     map[string]string   `json:"errors,omitempty"`
	Details    string              `json:"details,omitempty"`
}

// PaginationResponse describes the page carried by a list response.
type PaginationResponse struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// PageParams holds the pagination query parameters shared by list endpoints.
// An empty SortBy or SortDir selects the endpoint default.
type PageParams struct {
	Page    int    `form:"page,default=0"`
	Size    int    `form:"size,default=10"`
	SortBy  string `form:"sortBy"`
	SortDir string `form:"sortDir"`
}

// ExistsResponse answers an existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// AmountResponse carries a single aggregated amount.
type AmountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToPaginationResponse extracts the pagination block of a page.
func ToPaginationResponse[T any](p domain.Page[T]) *PaginationResponse {
	return &PaginationResponse{
		CurrentPage:   p.Number,
		TotalPages:    p.TotalPages(),
		TotalElements: p.TotalElements,
		Size:          p.Size,
		HasNext:       p.HasNext(),
		HasPrevious:   p.HasPrevious(),
	}
}

// SearchByPhoneParams defines query parameters of the phone search endpoints.
type SearchByPhoneParams struct {
	PageParams
	Phone string `form:"phone" binding:"required"`
}
