package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination represents pagination metadata
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
	Offset  int   `json:"-"`
}

// PaginationRequest represents a pagination request from client
type PaginationRequest struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// New creates a new pagination instance
func New(page, limit int, total int64) *Pagination {
	page, limit = clamp(page, limit)

	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}

	return &Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
		Offset:  (page - 1) * limit,
	}
}

// FromRequest creates pagination from HTTP request parameters.
// Unparseable values fall back to the defaults.
func FromRequest(pageStr, limitStr string) *PaginationRequest {
	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)
	page, limit = clamp(page, limit)

	return &PaginationRequest{
		Page:  page,
		Limit: limit,
	}
}

// Slice returns the requested page of items together with its metadata
func Slice[T any](items []T, page, limit int) ([]T, *Pagination) {
	p := New(page, limit, int64(len(items)))

	start := p.Offset
	if start >= len(items) {
		return []T{}, p
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], p
}

func clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}
