package model

import "time"

// SortField names a sortable record attribute.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByData      SortField = "data"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec orders a query. The zero value means the gateway's natural order.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// IsZero reports whether no ordering was requested.
func (s SortSpec) IsZero() bool {
	return s.Field == ""
}

// QueryFilter is the closed predicate understood by every gateway.
// Empty SearchText means no text filter. DateFrom and DateTo are inclusive.
type QueryFilter struct {
	SearchText string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// HasSearch reports whether a substring filter is present.
func (f QueryFilter) HasSearch() bool {
	return f.SearchText != ""
}

// Page is a validated 1-based page request.
type Page struct {
	Number int
	Size   int
}

// QueryResult is one page of matching records plus paging totals.
type QueryResult struct {
	Data        []Record `json:"data"`
	Total       int      `json:"total"`
	Page        int      `json:"page"`
	Limit       int      `json:"limit"`
	TotalPages  int      `json:"total_pages"`
	QueryTimeMs int64    `json:"query_time_ms"`
}

// DateRange echoes the bounds a date-range search was run with.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// DateRangeResult holds the newest-first records of a date-range search.
type DateRangeResult struct {
	Data        []Record  `json:"data"`
	Count       int       `json:"count"`
	QueryTimeMs int64     `json:"query_time_ms"`
	DateRange   DateRange `json:"date_range"`
}
