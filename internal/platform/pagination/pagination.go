// Package pagination holds the page request/response shapes shared by list
// and search operations.
package pagination

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	// MaxPage bounds Page so that Offset stays well inside int range and
	// inside what Postgres accepts for OFFSET.
	MaxPage = 100_000
)

// Request is a 1-based page request.
type Request struct {
	Page     int
	PageSize int
}

// ApplyDefaults fills unset fields. Out-of-range values are left for
// Validate to reject.
func (r *Request) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Min(1), validation.Max(MaxPage)),
		validation.Field(&r.PageSize, validation.Min(1), validation.Max(MaxPageSize)),
	)
}

func (r Request) Offset() int { return (r.Page - 1) * r.PageSize }
func (r Request) Limit() int  { return r.PageSize }

// Page is one page of a larger result set. Total counts the whole set.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

func NewPage[T any](items []T, total int, req Request) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: req.Page, PageSize: req.PageSize}
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Slice returns the window of items that req selects.
func Slice[T any](items []T, req Request) []T {
	start := req.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + req.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
