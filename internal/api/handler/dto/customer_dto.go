package dto

import (
	"customers-service/internal/domain/customer"
	"customers-service/internal/pkg/apperrors"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type AddressRequest struct {
	Line1    string `json:"line1,omitempty" validate:"max=200"`
	City     string `json:"city,omitempty" validate:"max=100"`
	District string `json:"district,omitempty" validate:"max=100"`
	Country  string `json:"country,omitempty" validate:"max=100"`
}

func (a AddressRequest) toDomain() customer.Address {
	return customer.Address{Line1: a.Line1, City: a.City, District: a.District, Country: a.Country}
}

// CreateCustomerRequest accepts a segment for wire compatibility; it is ignored
// and every new customer starts as STANDARD.
type CreateCustomerRequest struct {
	Type           string          `json:"type" validate:"omitempty,oneof=PERSONAL BUSINESS"`
	Segment        string          `json:"segment,omitempty" validate:"omitempty,oneof=STANDARD VIP PYME"`
	FirstName      string          `json:"firstName,omitempty" validate:"max=200"`
	LastName       string          `json:"lastName,omitempty" validate:"max=200"`
	BusinessName   string          `json:"businessName,omitempty" validate:"max=300"`
	Email          string          `json:"email,omitempty" validate:"omitempty,email"`
	DocumentType   string          `json:"documentType" validate:"omitempty,oneof=DNI RUC CE"`
	DocumentNumber string          `json:"documentNumber" validate:"max=30"`
	Phone          string          `json:"phone,omitempty" validate:"max=30"`
	Address        *AddressRequest `json:"address,omitempty"`
	Active         *bool           `json:"active,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validateStruct(r)
}

func (r *CreateCustomerRequest) ToDomain() *customer.CreateRequest {
	req := &customer.CreateRequest{
		Type:           customer.Type(r.Type),
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		BusinessName:   r.BusinessName,
		Email:          r.Email,
		DocumentType:   customer.DocumentType(r.DocumentType),
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		Active:         r.Active,
	}
	if r.Address != nil {
		a := r.Address.toDomain()
		req.Address = &a
	}
	return req
}

// UpdateCustomerRequest replaces the stored record. Absent scalar fields keep
// their stored value; an absent or null address clears it.
type UpdateCustomerRequest struct {
	Type           *string                  `json:"type,omitempty" validate:"omitempty,oneof=PERSONAL BUSINESS"`
	Segment        *string                  `json:"segment,omitempty" validate:"omitempty,oneof=STANDARD VIP PYME"`
	FirstName      *string                  `json:"firstName,omitempty" validate:"omitempty,max=200"`
	LastName       *string                  `json:"lastName,omitempty" validate:"omitempty,max=200"`
	BusinessName   *string                  `json:"businessName,omitempty" validate:"omitempty,max=300"`
	Email          *string                  `json:"email,omitempty" validate:"omitempty,email"`
	DocumentType   *string                  `json:"documentType,omitempty" validate:"omitempty,oneof=DNI RUC CE"`
	DocumentNumber *string                  `json:"documentNumber,omitempty" validate:"omitempty,max=30"`
	Phone          *string                  `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address        Nullable[AddressRequest] `json:"address"`
	Active         Nullable[bool]           `json:"active"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validateStruct(r)
}

func (r *UpdateCustomerRequest) ToDomain() *customer.UpdateRequest {
	req := &customer.UpdateRequest{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		BusinessName:   r.BusinessName,
		Email:          r.Email,
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		Active:         r.Active.Ptr(),
	}
	if r.Type != nil {
		t := customer.Type(*r.Type)
		req.Type = &t
	}
	if r.Segment != nil {
		s := customer.Segment(*r.Segment)
		req.Segment = &s
	}
	if r.DocumentType != nil {
		d := customer.DocumentType(*r.DocumentType)
		req.DocumentType = &d
	}
	if a := r.Address.Ptr(); a != nil {
		addr := a.toDomain()
		req.Address = &addr
	}
	return req
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := apperrors.FieldErrors{}
	for _, e := range verrs {
		fe.Add(e.Field(), validationMessage(e))
	}
	return apperrors.NewFieldErrors(fe)
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		return "Must be at most " + e.Param() + " characters"
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return "Invalid value"
	}
}

type ErrorDetail struct {
	Message string              `json:"message"`
	Field   string              `json:"field,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
