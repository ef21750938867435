package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name        string
		page        int
		limit       int
		total       int64
		totalPages  int
		hasNextPage bool
		hasPrevPage bool
	}{
		{"First of many", 1, 10, 45, 5, true, false},
		{"Middle page", 3, 10, 45, 5, true, true},
		{"Last page", 5, 10, 45, 5, false, true},
		{"Exact division", 2, 10, 20, 2, false, true},
		{"Empty result set", 1, 10, 0, 0, false, false},
		{"Page beyond the end", 9, 10, 45, 5, false, true},
		{"Limit of one", 2, 1, 3, 3, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)

			assert.Equal(t, tc.page, p.CurrentPage)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.total, p.TotalItems)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.hasNextPage, p.HasNextPage)
			assert.Equal(t, tc.hasPrevPage, p.HasPrevPage)
		})
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, 0, Skip(1, 10))
	assert.Equal(t, 10, Skip(2, 10))
	assert.Equal(t, 40, Skip(5, 10))
}
