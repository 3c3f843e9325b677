package customer

import (
	"customers-service/internal/pkg/apperrors"
	"time"
)

type AddressResponse struct {
	Line1    string `json:"line1,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Response is the external representation of a customer. Absent values are
// omitted and timestamps are rendered in UTC.
type Response struct {
	ID             string           `json:"id"`
	Type           Type             `json:"type,omitempty"`
	Segment        Segment          `json:"segment,omitempty"`
	FirstName      string           `json:"firstName,omitempty"`
	LastName       string           `json:"lastName,omitempty"`
	BusinessName   string           `json:"businessName,omitempty"`
	DisplayName    *string          `json:"displayName,omitempty"`
	Email          string           `json:"email,omitempty"`
	DocumentType   DocumentType     `json:"documentType,omitempty"`
	DocumentNumber string           `json:"documentNumber,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Address        *AddressResponse `json:"address,omitempty"`
	Active         bool             `json:"active"`
	CreatedAt      *time.Time       `json:"createdAt,omitempty"`
	DeletedAt      *time.Time       `json:"deletedAt,omitempty"`
}

type Eligibility struct {
	CustomerID       string  `json:"customerId"`
	Type             Type    `json:"type"`
	Segment          Segment `json:"segment"`
	HasActiveProduct bool    `json:"hasActiveProduct"`
}

// ToDomain builds a new customer from a sanitized and validated create request.
func ToDomain(r CreateRequest, now time.Time) Customer {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	c := Customer{
		Type:           r.Type,
		Segment:        DefaultSegment(),
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		BusinessName:   r.BusinessName,
		Email:          r.Email,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		Active:         active,
		CreatedAt:      now.UTC(),
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	return c.WithDisplayName()
}

// ApplyUpdate returns the merged customer and leaves existing untouched. Identity
// and audit fields never change here, except deletedAt when the update
// deactivates the customer.
func ApplyUpdate(existing Customer, r UpdateRequest, now time.Time) (Customer, error) {
	c := existing
	if r.Type != nil {
		c.Type = *r.Type
	}
	if r.Segment != nil {
		c.Segment = *r.Segment
	}
	setString(&c.FirstName, r.FirstName)
	setString(&c.LastName, r.LastName)
	setString(&c.BusinessName, r.BusinessName)
	setString(&c.Email, r.Email)
	if r.DocumentType != nil {
		c.DocumentType = *r.DocumentType
	}
	setString(&c.DocumentNumber, r.DocumentNumber)
	setString(&c.Phone, r.Phone)

	c.Address = Address{}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if err := c.ValidateSegment(); err != nil {
		return existing, err
	}

	// Inactive is terminal.
	if r.Active != nil {
		switch {
		case *r.Active && !existing.Active:
			return existing, apperrors.Unprocessable("inactive customers cannot be reactivated")
		case !*r.Active:
			c, _ = c.Deactivate(now)
		}
	}
	return c.WithDisplayName(), nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func ToResponse(c Customer) Response {
	resp := Response{
		ID:             c.ID,
		Type:           c.Type,
		Segment:        c.Segment,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		BusinessName:   c.BusinessName,
		DisplayName:    c.DisplayName,
		Email:          c.Email,
		DocumentType:   c.DocumentType,
		DocumentNumber: c.DocumentNumber,
		Phone:          c.Phone,
		Active:         c.Active,
	}
	if !c.Address.IsZero() {
		resp.Address = &AddressResponse{
			Line1:    c.Address.Line1,
			City:     c.Address.City,
			District: c.Address.District,
			Country:  c.Address.Country,
		}
	}
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt.UTC()
		resp.CreatedAt = &createdAt
	}
	if c.DeletedAt != nil {
		deletedAt := c.DeletedAt.UTC()
		resp.DeletedAt = &deletedAt
	}
	return resp
}

func ToResponses(cs []Customer) []Response {
	out := make([]Response, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToResponse(c))
	}
	return out
}

func ToEligibility(c Customer) Eligibility {
	return Eligibility{
		CustomerID: c.ID,
		Type:       c.Type,
		Segment:    c.Segment,
		// Product holdings live in another service.
		HasActiveProduct: false,
	}
}
