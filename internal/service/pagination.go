package service

import (
	"fmt"
	"math"
	"strconv"

	"recordquery/internal/model"
)

// PageDefaults configures NormalizePage. A MaxLimit of zero means unbounded.
type PageDefaults struct {
	Limit    int
	MaxLimit int
}

// NormalizePage validates raw page and limit values.
// Missing page defaults to 1 and missing limit to d.Limit (20 if unset).
// Non-numeric, non-positive or over-limit values fail with ErrInvalidPaginationInput.
func NormalizePage(rawPage, rawLimit string, d PageDefaults) (model.Page, error) {
	page, err := positiveInt("page", rawPage, 1)
	if err != nil {
		return model.Page{}, err
	}
	limit, err := NormalizeLimit(rawLimit, d)
	if err != nil {
		return model.Page{}, err
	}
	p := model.Page{Number: page, Size: limit}
	if err := checkOffset(p); err != nil {
		return model.Page{}, err
	}
	return p, nil
}

// NormalizeLimit validates a raw limit on its own.
func NormalizeLimit(rawLimit string, d PageDefaults) (int, error) {
	def := d.Limit
	if def <= 0 {
		def = 20
	}
	limit, err := positiveInt("limit", rawLimit, def)
	if err != nil {
		return 0, err
	}
	if d.MaxLimit > 0 && limit > d.MaxLimit {
		return 0, fmt.Errorf("%w: limit %d exceeds maximum %d", ErrInvalidPaginationInput, limit, d.MaxLimit)
	}
	return limit, nil
}

func positiveInt(name, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidPaginationInput, name, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidPaginationInput, name, n)
	}
	return n, nil
}

// Offset returns the number of rows skipped before page p.
func Offset(p model.Page) int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(total/limit). An empty result has zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// checkOffset rejects pages whose offset does not fit in an int.
func checkOffset(p model.Page) error {
	if p.Number-1 > math.MaxInt/p.Size {
		return fmt.Errorf("%w: page %d with size %d is out of range", ErrInvalidPaginationInput, p.Number, p.Size)
	}
	return nil
}

func validatePage(p model.Page) error {
	if p.Number < 1 || p.Size < 1 {
		return fmt.Errorf("%w: page %d with size %d", ErrInvalidPaginationInput, p.Number, p.Size)
	}
	return checkOffset(p)
}
