package resource_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/raywall/employee-service/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []resource.Item {
	items := make([]resource.Item, n)
	for i := range items {
		items[i] = resource.Item{"id": fmt.Sprintf("e-%02d", i)}
	}
	return items
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 2, resource.TotalPages(20, 10))
	assert.Equal(t, 3, resource.TotalPages(25, 10))
	assert.Equal(t, 1, resource.TotalPages(1, 10))
	assert.Equal(t, 0, resource.TotalPages(0, 10))
	assert.Equal(t, 0, resource.TotalPages(5, 0))
	assert.Equal(t, 1, resource.TotalPages(3, math.MaxInt))
}

func TestPaginate_HugeValuesStayEmpty(t *testing.T) {
	items := makeItems(3)

	req, err := resource.ParsePageRequest(map[string]string{"page": "4611686018427387905", "page_size": "4"}, 10)
	require.NoError(t, err)

	page := resource.Paginate(items, req)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPage)
	assert.Equal(t, 3, page.TotalItems)

	page = resource.Paginate(items, resource.PageRequest{Page: 1, PageSize: math.MaxInt})
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 1, page.TotalPage)

	page = resource.Paginate(items, resource.PageRequest{Page: math.MaxInt, PageSize: math.MaxInt})
	assert.Empty(t, page.Items)
}

func TestPaginate(t *testing.T) {
	items := makeItems(25)

	tests := []struct {
		page      int
		wantLen   int
		wantFirst string
	}{
		{1, 10, "e-00"},
		{2, 10, "e-10"},
		{3, 5, "e-20"},
		{4, 0, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			page := resource.Paginate(items, resource.PageRequest{Page: tt.page, PageSize: 10})

			assert.Len(t, page.Items, tt.wantLen)
			assert.NotNil(t, page.Items)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, 10, page.PageSize)
			assert.Equal(t, 3, page.TotalPage)
			assert.Equal(t, 25, page.TotalItems)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, page.Items[0]["id"])
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	page := resource.Paginate(nil, resource.PageRequest{Page: 1, PageSize: 10})
	assert.Equal(t, []resource.Item{}, page.Items)
	assert.Equal(t, 0, page.TotalPage)
	assert.Equal(t, 0, page.TotalItems)
}

func TestParsePageRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := resource.ParsePageRequest(map[string]string{"email_address": "x"}, 10)
		require.NoError(t, err)
		assert.Equal(t, resource.PageRequest{Page: 1, PageSize: 10}, req)
	})

	t.Run("explicit values", func(t *testing.T) {
		req, err := resource.ParsePageRequest(map[string]string{"page": "3", "page_size": "5"}, 10)
		require.NoError(t, err)
		assert.Equal(t, resource.PageRequest{Page: 3, PageSize: 5}, req)
	})

	t.Run("page size above the limit", func(t *testing.T) {
		_, err := resource.ParsePageRequest(map[string]string{"page_size": "9223372036854775807"}, 10)

		var verr *resource.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []resource.FieldError{{Field: "page_size", Reason: resource.ReasonTooLarge}}, verr.Fields)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := resource.ParsePageRequest(map[string]string{"page": "0", "page_size": "abc"}, 10)

		var verr *resource.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []resource.FieldError{
			{Field: "page", Reason: resource.ReasonNotPositive},
			{Field: "page_size", Reason: resource.ReasonNotPositive},
		}, verr.Fields)
	})
}
