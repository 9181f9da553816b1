// Package service holds the business logic between the HTTP handlers and the
// repositories. Handlers parse requests and write responses; services own
// validation, list parameter normalization, and the auth flow.
package service

import "github.com/sakif/maintainer-match/internal/repository"

// Default page size when the client doesn't send a limit. There is no upper
// bound on limit — a client asking for 10000 rows gets 10000 rows.
const defaultPageSize = 10

// ListParams is the client-supplied sort and pagination input, after the
// handler has parsed the integers (zero-valued when absent or unparseable).
type ListParams struct {
	SortBy string
	Order  string
	Page   int
	Limit  int
}

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// normalize fills defaults (page 1, limit 10) and converts to the
// repository's options. Sort column and direction pass through untouched:
// clamping those is the query builder's job. The page is deliberately NOT
// clamped to the available range — an out-of-range page yields an empty list
// with the requested page echoed back.
func (p ListParams) normalize() repository.ListOptions {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	return repository.ListOptions{
		SortBy: p.SortBy,
		Order:  p.Order,
		Page:   page,
		Limit:  limit,
	}
}

// paginate computes the metadata for one page result.
// totalPages = ceil(total/limit), so the last page number and the row count
// stay consistent because both came from the same filtered snapshot.
func paginate(opts repository.ListOptions, total int) Pagination {
	return Pagination{
		Page:       opts.Page,
		Limit:      opts.Limit,
		Total:      total,
		TotalPages: (total + opts.Limit - 1) / opts.Limit,
	}
}
