package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging(t *testing.T) {
	page, limit := NormalizePaging(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = NormalizePaging(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = NormalizePaging(4, 50)
	assert.Equal(t, 4, page)
	assert.Equal(t, 50, limit)

	_, limit = NormalizePaging(1, 5000)
	assert.Equal(t, 100, limit)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 20))
	assert.Equal(t, 1, PageCount(1, 20))
	assert.Equal(t, 1, PageCount(20, 20))
	assert.Equal(t, 2, PageCount(21, 20))
	assert.Equal(t, 5, PageCount(100, 20))
	assert.Equal(t, 6, PageCount(101, 20))
}
