package customer

import (
	"context"
)

type Filter struct {
	Type    *Type
	Segment *Segment
}

// DuplicateDocument is a document shared by more than one active customer.
type DuplicateDocument struct {
	Document Document
	Count    int
}

// CustomerRepository persists customers. FindByID returns an error wrapping
// apperrors.ErrNotFound when the id is unknown, and Save returns one wrapping
// apperrors.ErrAlreadyExists when the active-document index rejects the write.
type CustomerRepository interface {
	ExistsActiveByDocument(ctx context.Context, doc Document) (bool, error)

	ExistsActiveByDocumentExcludingID(ctx context.Context, doc Document, excludeID string) (bool, error)

	FindAllActiveByDocument(ctx context.Context, doc Document) ([]Customer, error)

	FindByDocumentNumberActive(ctx context.Context, documentNumber string) ([]Customer, error)

	FindByID(ctx context.Context, id string) (Customer, error)

	FindFiltered(ctx context.Context, filter Filter, sort Sort) ([]Customer, error)

	// Save inserts when the id is empty and overwrites otherwise.
	Save(ctx context.Context, c Customer) (Customer, error)

	FindDuplicateActiveDocuments(ctx context.Context) ([]DuplicateDocument, error)
}
