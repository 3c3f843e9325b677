package customer

import (
	"math"
	"strings"
)

type SortField string

const (
	SortByCreatedAt    SortField = "createdAt"
	SortByFirstName    SortField = "firstName"
	SortByLastName     SortField = "lastName"
	SortByBusinessName SortField = "businessName"
)

var sortableFields = map[string]SortField{
	string(SortByCreatedAt):    SortByCreatedAt,
	string(SortByFirstName):    SortByFirstName,
	string(SortByLastName):     SortByLastName,
	string(SortByBusinessName): SortByBusinessName,
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Sort struct {
	Field      SortField
	Descending bool
}

type PageSpec struct {
	Sort   Sort
	Offset int
	Limit  int
}

// ResolvePage never fails: unknown sort fields fall back to createdAt and out of
// range page values are clamped.
func ResolvePage(page, size *int, sortField, direction string) PageSpec {
	field, ok := sortableFields[sortField]
	if !ok {
		field = SortByCreatedAt
	}

	p := 0
	if page != nil && *page > 0 {
		p = *page
	}

	s := DefaultPageSize
	if size != nil {
		s = min(max(*size, 1), MaxPageSize)
	}

	// Saturate instead of wrapping; an unreachable page is simply empty.
	offset := math.MaxInt
	if p <= math.MaxInt/s {
		offset = p * s
	}

	return PageSpec{
		Sort: Sort{
			Field:      field,
			Descending: strings.EqualFold(direction, "desc"),
		},
		Offset: offset,
		Limit:  s,
	}
}

// Window applies the page to an already sorted result.
func (p PageSpec) Window(cs []Customer) []Customer {
	if p.Offset < 0 || p.Offset >= len(cs) {
		return []Customer{}
	}
	end := min(p.Offset+p.Limit, len(cs))
	return cs[p.Offset:end]
}
