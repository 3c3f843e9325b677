package customer

import (
	"customers-service/internal/pkg/apperrors"
	"strings"
	"time"
)

type Type string

const (
	TypePersonal Type = "PERSONAL"
	TypeBusiness Type = "BUSINESS"
)

type Segment string

const (
	SegmentStandard Segment = "STANDARD"
	SegmentVIP      Segment = "VIP"
	SegmentPYME     Segment = "PYME"
)

type DocumentType string

const (
	DocumentDNI DocumentType = "DNI"
	DocumentRUC DocumentType = "RUC"
	DocumentCE  DocumentType = "CE"
)

func (t Type) Valid() bool {
	return t == TypePersonal || t == TypeBusiness
}

func (s Segment) Valid() bool {
	return s == SegmentStandard || s == SegmentVIP || s == SegmentPYME
}

func (d DocumentType) Valid() bool {
	return d == DocumentDNI || d == DocumentRUC || d == DocumentCE
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", apperrors.NewValidationError("type", "must be one of PERSONAL, BUSINESS")
	}
	return t, nil
}

func ParseSegment(s string) (Segment, error) {
	seg := Segment(strings.ToUpper(strings.TrimSpace(s)))
	if !seg.Valid() {
		return "", apperrors.NewValidationError("segment", "must be one of STANDARD, VIP, PYME")
	}
	return seg, nil
}

func ParseDocumentType(s string) (DocumentType, error) {
	d := DocumentType(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", apperrors.NewValidationError("documentType", "must be one of DNI, RUC, CE")
	}
	return d, nil
}

// Document identifies a customer for uniqueness and eligibility.
type Document struct {
	Type   DocumentType
	Number string
}

type Address struct {
	Line1    string
	City     string
	District string
	Country  string
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// Customer is handled as a value: operations return an updated copy instead of
// mutating a record that other goroutines may hold.
type Customer struct {
	ID             string
	Type           Type
	Segment        Segment
	FirstName      string
	LastName       string
	BusinessName   string
	DisplayName    *string
	Email          string
	DocumentType   DocumentType
	DocumentNumber string
	Phone          string
	Address        Address
	Active         bool
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

func DefaultSegment() Segment {
	return SegmentStandard
}

func (c Customer) Document() Document {
	return Document{Type: c.DocumentType, Number: c.DocumentNumber}
}

func (c Customer) WithDisplayName() Customer {
	c.DisplayName = displayNameOf(c)
	return c
}

func displayNameOf(c Customer) *string {
	var name string
	switch c.Type {
	case TypePersonal:
		parts := make([]string, 0, 2)
		for _, p := range []string{c.FirstName, c.LastName} {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		name = strings.Join(parts, " ")
	case TypeBusiness:
		name = strings.TrimSpace(c.BusinessName)
	}
	if name == "" {
		return nil
	}
	return &name
}

func (c Customer) ValidateSegment() error {
	switch {
	case c.Type == TypeBusiness && c.Segment == SegmentVIP:
		return apperrors.Unprocessable("segment VIP is not allowed for BUSINESS customers")
	case c.Type == TypePersonal && c.Segment == SegmentPYME:
		return apperrors.Unprocessable("segment PYME is not allowed for PERSONAL customers")
	}
	return nil
}

// Deactivate reports false when the customer was already inactive; deletedAt is
// only ever set once.
func (c Customer) Deactivate(now time.Time) (Customer, bool) {
	if !c.Active {
		return c, false
	}
	c.Active = false
	deletedAt := now.UTC()
	c.DeletedAt = &deletedAt
	return c, true
}
