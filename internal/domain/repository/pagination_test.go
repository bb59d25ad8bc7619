package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		page   int
		offset int
	}{
		{page: 1, offset: 0},
		{page: 2, offset: 20},
		{page: 5, offset: 80},
		{page: 0, offset: 0},
		{page: -3, offset: 0},
	}

	for _, tt := range tests {
		params := PaginationParams{Page: tt.page}
		assert.Equal(t, tt.offset, params.Offset(), "page %d", tt.page)
		assert.Equal(t, PageSize, params.Limit())
	}
}
