package customer_test

import (
	"customers-service/internal/domain/customer"
	"customers-service/internal/pkg/apperrors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	tp, err := customer.ParseType(" personal ")
	require.NoError(t, err)
	assert.Equal(t, customer.TypePersonal, tp)

	seg, err := customer.ParseSegment("pyme")
	require.NoError(t, err)
	assert.Equal(t, customer.SegmentPYME, seg)

	dt, err := customer.ParseDocumentType("Ruc")
	require.NoError(t, err)
	assert.Equal(t, customer.DocumentRUC, dt)

	_, err = customer.ParseType("GOVERNMENT")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = customer.ParseSegment("")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = customer.ParseDocumentType("PASSPORT")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCustomer_WithDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		cust     customer.Customer
		expected *string
	}{
		{
			name:     "personal joins first and last",
			cust:     customer.Customer{Type: customer.TypePersonal, FirstName: "Ana", LastName: "Perez"},
			expected: ptr("Ana Perez"),
		},
		{
			name:     "personal with only last name",
			cust:     customer.Customer{Type: customer.TypePersonal, FirstName: "  ", LastName: "Perez"},
			expected: ptr("Perez"),
		},
		{
			name:     "personal without names",
			cust:     customer.Customer{Type: customer.TypePersonal},
			expected: nil,
		},
		{
			name:     "business uses business name",
			cust:     customer.Customer{Type: customer.TypeBusiness, FirstName: "Ana", BusinessName: " Acme SAC "},
			expected: ptr("Acme SAC"),
		},
		{
			name:     "business without business name",
			cust:     customer.Customer{Type: customer.TypeBusiness, FirstName: "Ana"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cust.WithDisplayName()
			assert.Equal(t, tt.expected, got.DisplayName)
			assert.Nil(t, tt.cust.DisplayName, "receiver must not change")
		})
	}
}

func TestCustomer_ValidateSegment(t *testing.T) {
	allowed := map[customer.Type][]customer.Segment{
		customer.TypePersonal: {customer.SegmentStandard, customer.SegmentVIP},
		customer.TypeBusiness: {customer.SegmentStandard, customer.SegmentPYME},
	}
	for tp, segments := range allowed {
		for _, seg := range segments {
			assert.NoError(t, customer.Customer{Type: tp, Segment: seg}.ValidateSegment(), "%s/%s", tp, seg)
		}
	}

	err := customer.Customer{Type: customer.TypeBusiness, Segment: customer.SegmentVIP}.ValidateSegment()
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)

	err = customer.Customer{Type: customer.TypePersonal, Segment: customer.SegmentPYME}.ValidateSegment()
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestCustomer_Deactivate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.FixedZone("PET", -5*3600))

	t.Run("Active customer", func(t *testing.T) {
		c := customer.Customer{ID: "c-1", Active: true}
		got, changed := c.Deactivate(now)

		assert.True(t, changed)
		assert.False(t, got.Active)
		require.NotNil(t, got.DeletedAt)
		assert.True(t, got.DeletedAt.Equal(now))
		assert.Equal(t, time.UTC, got.DeletedAt.Location())
		assert.True(t, c.Active, "receiver must not change")
	})

	t.Run("Already inactive keeps first deletion time", func(t *testing.T) {
		first := now.Add(-time.Hour)
		c := customer.Customer{ID: "c-1", Active: false, DeletedAt: &first}
		got, changed := c.Deactivate(now)

		assert.False(t, changed)
		assert.Equal(t, &first, got.DeletedAt)
	})
}

func ptr[T any](v T) *T {
	return &v
}
