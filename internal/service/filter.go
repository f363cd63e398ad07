package service

import (
	"fmt"
	"time"

	"recordquery/internal/model"
)

// Accepted date bound layouts. Values without a zone are read as UTC.
var boundLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateOnlyLayout = "2006-01-02"

// BuildFilter turns raw request values into a QueryFilter.
// An empty search means no text filter. A date-only upper bound covers the
// whole day, so "2024-05-31" includes records created at 2024-05-31T18:00Z.
func BuildFilter(rawSearch, rawDateFrom, rawDateTo string) (model.QueryFilter, error) {
	f := model.QueryFilter{SearchText: rawSearch}

	if rawDateFrom != "" {
		from, err := parseBound(rawDateFrom, false)
		if err != nil {
			return model.QueryFilter{}, fmt.Errorf("%w: startDate %q: %v", ErrInvalidFilterInput, rawDateFrom, err)
		}
		f.DateFrom = &from
	}
	if rawDateTo != "" {
		to, err := parseBound(rawDateTo, true)
		if err != nil {
			return model.QueryFilter{}, fmt.Errorf("%w: endDate %q: %v", ErrInvalidFilterInput, rawDateTo, err)
		}
		f.DateTo = &to
	}
	return f, nil
}

func parseBound(raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		if upper {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339 timestamp")
}
