package service

import (
	"fmt"

	"recordquery/internal/model"
)

// ParseSort validates raw sortBy/sortOrder values. Empty values default to
// newest first.
func ParseSort(rawField, rawDirection string) (model.SortSpec, error) {
	s := model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortDesc}

	switch f := model.SortField(rawField); f {
	case "":
	case model.SortByCreatedAt, model.SortByData:
		s.Field = f
	default:
		return model.SortSpec{}, fmt.Errorf("%w: sortBy must be createdAt or data, got %q", ErrInvalidSortInput, rawField)
	}

	switch d := model.SortDirection(rawDirection); d {
	case "":
	case model.SortAsc, model.SortDesc:
		s.Direction = d
	default:
		return model.SortSpec{}, fmt.Errorf("%w: sortOrder must be asc or desc, got %q", ErrInvalidSortInput, rawDirection)
	}
	return s, nil
}
