package customer

import (
	"customers-service/internal/pkg/apperrors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var documentPatterns = map[DocumentType]*regexp.Regexp{
	DocumentDNI: regexp.MustCompile(`^\d{8}$`),
	DocumentRUC: regexp.MustCompile(`^\d{11}$`),
	DocumentCE:  regexp.MustCompile(`^[A-Za-z0-9-]{9,12}$`),
}

const (
	personalNameMin = 1
	personalNameMax = 60
	businessNameMin = 2
	businessNameMax = 120
)

// ValidateCreate stops at the first failed rule.
func ValidateCreate(r *CreateRequest) error {
	if r == nil {
		return apperrors.MissingField("request")
	}
	if r.Type == "" {
		return apperrors.MissingField("type")
	}
	if r.DocumentType == "" {
		return apperrors.MissingField("documentType")
	}
	if strings.TrimSpace(r.DocumentNumber) == "" {
		return apperrors.MissingField("documentNumber")
	}
	if err := validateNames(r.Type, r.FirstName, r.LastName, r.BusinessName); err != nil {
		return err
	}
	return validateDocument(r.DocumentType, r.DocumentNumber)
}

// ValidateRecord applies the create rules to an already merged customer, so an
// update can never leave a record that could not have been created.
func ValidateRecord(c Customer) error {
	if c.Type == "" {
		return apperrors.BusinessRule("type is required")
	}
	if !c.Segment.Valid() {
		return apperrors.Unprocessable("unsupported segment %q", c.Segment)
	}
	if c.DocumentType == "" || strings.TrimSpace(c.DocumentNumber) == "" {
		return apperrors.BusinessRule("documentType and documentNumber are required")
	}
	if err := validateNames(c.Type, c.FirstName, c.LastName, c.BusinessName); err != nil {
		return err
	}
	return validateDocument(c.DocumentType, c.DocumentNumber)
}

func validateNames(t Type, first, last, business string) error {
	switch t {
	case TypePersonal:
		if !lengthBetween(first, personalNameMin, personalNameMax) {
			return apperrors.BusinessRule("firstName is required for PERSONAL customers (%d-%d characters)", personalNameMin, personalNameMax)
		}
		if !lengthBetween(last, personalNameMin, personalNameMax) {
			return apperrors.BusinessRule("lastName is required for PERSONAL customers (%d-%d characters)", personalNameMin, personalNameMax)
		}
	case TypeBusiness:
		if !lengthBetween(business, businessNameMin, businessNameMax) {
			return apperrors.BusinessRule("businessName is required for BUSINESS customers (%d-%d characters)", businessNameMin, businessNameMax)
		}
	default:
		return apperrors.BusinessRule("unsupported customer type %q", t)
	}
	return nil
}

func validateDocument(dt DocumentType, number string) error {
	pattern, ok := documentPatterns[dt]
	if !ok {
		return apperrors.BusinessRule("unsupported document type %q", dt)
	}
	if !pattern.MatchString(number) {
		return apperrors.BusinessRule("documentNumber does not match the %s format", dt)
	}
	return nil
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= lo && n <= hi
}
