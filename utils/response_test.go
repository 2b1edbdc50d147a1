package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalCount int64
		wantPages  int
	}{
		{"exact multiple", 1, 10, 30, 3},
		{"partial last page", 1, 10, 31, 4},
		{"single row", 1, 10, 1, 1},
		{"empty result", 1, 10, 0, 0},
		{"limit larger than total", 1, 50, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.totalCount)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.totalCount, p.TotalCount)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}
