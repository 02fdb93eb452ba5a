package model

import (
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 3
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit within int64 for any limit up to MaxLimit.
	MaxPage = math.MaxInt64 / MaxLimit
)

// PageRequest selects one page of a listing. Pages start at 1.
type PageRequest struct {
	Page  int64
	Limit int64
}

// NewPageRequest parses page and limit query values, falling back to the
// defaults for anything missing, non-numeric or below 1. Values above
// MaxPage and MaxLimit are capped.
func NewPageRequest(page, limit string) PageRequest {
	return PageRequest{
		Page:  min(parsePositive(page, DefaultPage), MaxPage),
		Limit: min(parsePositive(limit, DefaultLimit), MaxLimit),
	}
}

// Skip is the number of documents before the page. It never overflows, even
// for a PageRequest built without NewPageRequest.
func (p PageRequest) Skip() int64 {
	page := min(max(p.Page, 1), MaxPage)
	limit := min(max(p.Limit, 0), MaxLimit)
	return (page - 1) * limit
}

func parsePositive(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Page is one page of results with the totals needed for navigation.
type Page[T any] struct {
	Items      []*T  `json:"items"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPage[T any](items []*T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []*T{}
	}
	return &Page[T]{
		Items:      items,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages(total, req.Limit),
	}
}

func totalPages(total, limit int64) int64 {
	if limit < 1 || total < 1 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
