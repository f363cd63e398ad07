package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recordquery/internal/model"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		dir     string
		want    model.SortSpec
		wantErr bool
	}{
		{name: "defaults", want: model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortDesc}},
		{name: "data ascending", field: "data", dir: "asc", want: model.SortSpec{Field: model.SortByData, Direction: model.SortAsc}},
		{name: "direction only", dir: "asc", want: model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortAsc}},
		{name: "unknown field", field: "id", wantErr: true},
		{name: "column injection", field: "created_at; DROP TABLE records", wantErr: true},
		{name: "unknown direction", dir: "DESC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.field, tt.dir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSortInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
