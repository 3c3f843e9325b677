package customer_test

import (
	"customers-service/internal/domain/customer"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name      string
		page      *int
		size      *int
		sort      string
		direction string
		want      customer.PageSpec
	}{
		{
			name: "defaults",
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByCreatedAt}, Offset: 0, Limit: 20},
		},
		{
			name: "explicit page and size",
			page: ptr(2), size: ptr(10), sort: "lastName", direction: "DESC",
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByLastName, Descending: true}, Offset: 20, Limit: 10},
		},
		{
			name: "negative page treated as first",
			page: ptr(-3), size: ptr(5),
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByCreatedAt}, Offset: 0, Limit: 5},
		},
		{
			name: "size below one clamped",
			size: ptr(0),
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByCreatedAt}, Limit: 1},
		},
		{
			name: "size above max clamped",
			page: ptr(1), size: ptr(1000),
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByCreatedAt}, Offset: 100, Limit: 100},
		},
		{
			name: "unknown sort field falls back",
			sort: "email", direction: "asc",
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByCreatedAt}, Limit: 20},
		},
		{
			name: "unknown direction is ascending",
			sort: "businessName", direction: "sideways",
			want: customer.PageSpec{Sort: customer.Sort{Field: customer.SortByBusinessName}, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, customer.ResolvePage(tt.page, tt.size, tt.sort, tt.direction))
		})
	}
}

func TestResolvePage_Bounds(t *testing.T) {
	for _, size := range []int{-100, -1, 0, 1, 50, 100, 101, 1 << 20} {
		spec := customer.ResolvePage(nil, ptr(size), "", "")
		assert.GreaterOrEqual(t, spec.Limit, 1, "size %d", size)
		assert.LessOrEqual(t, spec.Limit, customer.MaxPageSize, "size %d", size)
		assert.Zero(t, spec.Offset)
	}
}

func TestPageSpec_Window(t *testing.T) {
	all := make([]customer.Customer, 25)
	for i := range all {
		all[i] = customer.Customer{ID: fmt.Sprintf("c-%02d", i)}
	}

	first := customer.ResolvePage(ptr(0), ptr(10), "", "").Window(all)
	assert.Len(t, first, 10)
	assert.Equal(t, "c-00", first[0].ID)

	last := customer.ResolvePage(ptr(2), ptr(10), "", "").Window(all)
	assert.Len(t, last, 5)
	assert.Equal(t, "c-20", last[0].ID)

	beyond := customer.ResolvePage(ptr(9), ptr(10), "", "").Window(all)
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}

func TestResolvePage_HugePageDoesNotWrap(t *testing.T) {
	all := make([]customer.Customer, 3)

	for _, page := range []int{math.MaxInt / 2, math.MaxInt, math.MaxInt/4 + 1} {
		spec := customer.ResolvePage(ptr(page), ptr(4), "", "")
		assert.Equal(t, math.MaxInt, spec.Offset, "page %d", page)
		assert.Equal(t, 4, spec.Limit)
		assert.Empty(t, spec.Window(all), "page %d", page)
	}

	spec := customer.ResolvePage(ptr(math.MaxInt/100), ptr(100), "", "")
	assert.Equal(t, (math.MaxInt/100)*100, spec.Offset)
	assert.Empty(t, spec.Window(all))
}
