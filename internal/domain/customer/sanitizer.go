package customer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SanitizeCreate normalizes a create request in place. Applying it twice
// yields the same result as applying it once.
func SanitizeCreate(r *CreateRequest) {
	if r == nil {
		return
	}
	// A Caser keeps internal state, so every call builds its own.
	title := cases.Title(language.Und)

	r.FirstName = titleCase(title, r.FirstName)
	r.LastName = titleCase(title, r.LastName)
	r.BusinessName = collapseSpaces(r.BusinessName)
	r.Email = normalizeEmail(r.Email)
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = sanitizeAddress(title, r.Address)
}

func SanitizeUpdate(r *UpdateRequest) {
	if r == nil {
		return
	}
	title := cases.Title(language.Und)

	applyTo(r.FirstName, func(s string) string { return titleCase(title, s) })
	applyTo(r.LastName, func(s string) string { return titleCase(title, s) })
	applyTo(r.BusinessName, collapseSpaces)
	applyTo(r.Email, normalizeEmail)
	applyTo(r.DocumentNumber, strings.TrimSpace)
	applyTo(r.Phone, strings.TrimSpace)
	r.Address = sanitizeAddress(title, r.Address)
}

func sanitizeAddress(title cases.Caser, a *Address) *Address {
	if a == nil {
		return nil
	}
	out := Address{
		Line1:    collapseSpaces(a.Line1),
		City:     titleCase(title, a.City),
		District: titleCase(title, a.District),
		Country:  titleCase(title, a.Country),
	}
	return &out
}

func applyTo(s *string, fn func(string) string) {
	if s != nil {
		*s = fn(*s)
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func titleCase(title cases.Caser, s string) string {
	s = collapseSpaces(s)
	if s == "" {
		return s
	}
	return title.String(s)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
