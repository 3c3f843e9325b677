package customer

// CreateRequest has no segment: new customers always start as STANDARD.
type CreateRequest struct {
	Type           Type
	FirstName      string
	LastName       string
	BusinessName   string
	Email          string
	DocumentType   DocumentType
	DocumentNumber string
	Phone          string
	Address        *Address
	Active         *bool
}

// UpdateRequest replaces every field that is set. Segment is mandatory and a nil
// Address clears the stored address.
type UpdateRequest struct {
	Type           *Type
	Segment        *Segment
	FirstName      *string
	LastName       *string
	BusinessName   *string
	Email          *string
	DocumentType   *DocumentType
	DocumentNumber *string
	Phone          *string
	Address        *Address
	Active         *bool
}

type ListQuery struct {
	Type      *Type
	Segment   *Segment
	Page      *int
	Size      *int
	Sort      string
	Direction string
}
