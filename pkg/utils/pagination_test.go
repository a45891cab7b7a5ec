package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParamsDefaults(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, GetPaginationParams(1, 10).CalculateOffset())
	assert.Equal(t, 20, GetPaginationParams(3, 10).CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(25, 2, 10)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.EqualValues(t, 25, meta.TotalCount)

	// limit 0 means everything on one page
	meta = CalculateMeta(25, 1, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 25, meta.Limit)
}
