package customer

import (
	"context"
	"customers-service/internal/event"
	"customers-service/internal/infrastructure/monitoring"
	"customers-service/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	inputValidationPassed = "Input validation passed"
	customerNotFound      = "Customer not found by repository"
)

type CustomerService interface {
	Create(ctx context.Context, req *CreateRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (Response, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ListQuery) ([]Response, error)
	Eligibility(ctx context.Context, docType DocumentType, documentNumber string) (Eligibility, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (Response, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("Warning: No event publisher provided to NewCustomerService, events will be dropped")
		eventPublisher = event.NewNoopPublisher(logger)
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
		now:    time.Now,
	}
}

func NewCustomerEventPayload(c Customer) event.CustomerEventPayload {
	p := event.CustomerEventPayload{
		CustomerID:     c.ID,
		Type:           string(c.Type),
		Segment:        string(c.Segment),
		DisplayName:    c.DisplayName,
		Email:          c.Email,
		DocumentType:   string(c.DocumentType),
		DocumentNumber: c.DocumentNumber,
		Phone:          c.Phone,
		Active:         c.Active,
		CreatedAt:      c.CreatedAt.UTC(),
		DeletedAt:      c.DeletedAt,
	}
	if !c.Address.IsZero() {
		p.Address = &event.AddressPayload{
			Line1:    c.Address.Line1,
			City:     c.Address.City,
			District: c.Address.District,
			Country:  c.Address.Country,
		}
	}
	return p
}

func (s *customerService) Create(ctx context.Context, req *CreateRequest) (Response, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	SanitizeCreate(req)
	if err := ValidateCreate(req); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return Response{}, err
	}

	doc := Document{Type: req.DocumentType, Number: req.DocumentNumber}
	logger := s.logger.With(slog.String("documentType", string(doc.Type)))
	logger.InfoContext(ctx, inputValidationPassed)

	exists, err := s.repo.ExistsActiveByDocument(ctx, doc)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error checking document uniqueness", slog.Any("error", err))
		return Response{}, fmt.Errorf("failed to check document uniqueness: %w", err)
	}
	if exists {
		monitoring.RecordConflict(monitoring.ConflictStagePrecheck)
		logger.WarnContext(ctx, "Active customer already registered with this document")
		return Response{}, apperrors.Conflict("an active customer already exists with document %s", doc.Type)
	}

	saved, err := s.repo.Save(ctx, ToDomain(*req, s.now()))
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			// Lost a race with a concurrent create of the same document.
			monitoring.RecordConflict(monitoring.ConflictStageIndex)
			logger.WarnContext(ctx, "Unique index rejected new customer", slog.Any("error", err))
			return Response{}, apperrors.Conflict("an active customer already exists with document %s", doc.Type)
		}
		logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return Response{}, fmt.Errorf("failed to save new customer: %w", err)
	}

	logger = logger.With(slog.String("customerID", saved.ID))
	monitoring.RecordCustomerCreated()

	created := event.CustomerCreatedEvent{Timestamp: s.now().UTC(), Payload: NewCustomerEventPayload(saved)}
	if pubErr := s.pub.PublishCustomerCreated(ctx, created); pubErr != nil {
		logger.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully created new customer")
	return ToResponse(saved), nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (Response, error) {
	logger := s.logger.With(slog.String("customerID", id))
	logger.InfoContext(ctx, "Attempting to get customer by ID")

	c, err := s.findByID(ctx, logger, id)
	if err != nil {
		return Response{}, err
	}
	return ToResponse(c), nil
}

func (s *customerService) Update(ctx context.Context, id string, req *UpdateRequest) (Response, error) {
	logger := s.logger.With(slog.String("customerID", id))
	logger.InfoContext(ctx, "Attempting to update customer")

	existing, err := s.findByID(ctx, logger, id)
	if err != nil {
		return Response{}, err
	}

	if req == nil || req.Segment == nil {
		logger.WarnContext(ctx, "Update rejected: segment not provided")
		return Response{}, apperrors.Unprocessable("segment is required on update")
	}

	SanitizeUpdate(req)

	doc := existing.Document()
	if req.DocumentType != nil {
		doc.Type = *req.DocumentType
	}
	if req.DocumentNumber != nil {
		doc.Number = *req.DocumentNumber
	}

	taken, err := s.repo.ExistsActiveByDocumentExcludingID(ctx, doc, existing.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error checking document uniqueness", slog.Any("error", err))
		return Response{}, fmt.Errorf("failed to check document uniqueness for customer %s: %w", id, err)
	}
	if taken {
		monitoring.RecordConflict(monitoring.ConflictStagePrecheck)
		logger.WarnContext(ctx, "Document already belongs to another active customer")
		return Response{}, apperrors.Conflict("another active customer already exists with document %s", doc.Type)
	}

	updated, err := ApplyUpdate(existing, *req, s.now())
	if err != nil {
		logger.WarnContext(ctx, "Update rejected by segment or lifecycle rules", slog.Any("error", err))
		return Response{}, err
	}
	if err := ValidateRecord(updated); err != nil {
		logger.WarnContext(ctx, "Merged customer violates business rules", slog.Any("error", err))
		return Response{}, err
	}

	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyExists):
			monitoring.RecordConflict(monitoring.ConflictStageIndex)
			logger.WarnContext(ctx, "Unique index rejected customer update", slog.Any("error", err))
			return Response{}, apperrors.Conflict("another active customer already exists with document %s", doc.Type)
		case errors.Is(err, apperrors.ErrNotFound):
			logger.ErrorContext(ctx, "Customer disappeared before save completed")
			return Response{}, err
		}
		logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return Response{}, fmt.Errorf("failed to save customer %s: %w", id, err)
	}

	if existing.Active && !saved.Active {
		monitoring.RecordCustomerDeactivated()
	}

	updatedEvent := event.CustomerUpdatedEvent{Timestamp: s.now().UTC(), Payload: NewCustomerEventPayload(saved)}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updatedEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer updated, but FAILED to publish update event", slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully updated customer")
	return ToResponse(saved), nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	logger := s.logger.With(slog.String("customerID", id))
	logger.InfoContext(ctx, "Attempting to deactivate customer")

	existing, err := s.findByID(ctx, logger, id)
	if err != nil {
		return err
	}

	deactivated, changed := existing.Deactivate(s.now())
	if !changed {
		logger.InfoContext(ctx, "Customer already inactive, skipping save")
		return nil
	}

	saved, err := s.repo.Save(ctx, deactivated)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.ErrorContext(ctx, "Customer disappeared before save completed")
			return err
		}
		logger.ErrorContext(ctx, "Repository failed to deactivate customer", slog.Any("error", err))
		return fmt.Errorf("failed to deactivate customer %s: %w", id, err)
	}
	monitoring.RecordCustomerDeactivated()

	deleted := event.CustomerDeletedEvent{Timestamp: s.now().UTC(), Payload: NewCustomerEventPayload(saved)}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deleted); pubErr != nil {
		logger.ErrorContext(ctx, "Customer deactivated, but FAILED to publish deletion event", slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully deactivated customer")
	return nil
}

func (s *customerService) List(ctx context.Context, q ListQuery) ([]Response, error) {
	page := ResolvePage(q.Page, q.Size, q.Sort, q.Direction)
	logger := s.logger.With(
		slog.String("sort", string(page.Sort.Field)),
		slog.Bool("descending", page.Sort.Descending),
		slog.Int("offset", page.Offset),
		slog.Int("limit", page.Limit),
	)
	logger.InfoContext(ctx, "Attempting to list customers")

	// The store returns the complete sorted match set; the window is cut here.
	all, err := s.repo.FindFiltered(ctx, Filter{Type: q.Type, Segment: q.Segment}, page.Sort)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	result := ToResponses(page.Window(all))
	logger.InfoContext(ctx, "Successfully listed customers", slog.Int("matched", len(all)), slog.Int("count", len(result)))
	return result, nil
}

func (s *customerService) Eligibility(ctx context.Context, docType DocumentType, documentNumber string) (Eligibility, error) {
	documentNumber = strings.TrimSpace(documentNumber)
	if docType == "" {
		return Eligibility{}, apperrors.MissingField("documentType")
	}
	if documentNumber == "" {
		return Eligibility{}, apperrors.MissingField("documentNumber")
	}

	logger := s.logger.With(slog.String("documentType", string(docType)))
	logger.InfoContext(ctx, "Attempting eligibility lookup")

	matches, err := s.repo.FindAllActiveByDocument(ctx, Document{Type: docType, Number: documentNumber})
	if err != nil {
		logger.ErrorContext(ctx, "Repository error during eligibility lookup", slog.Any("error", err))
		return Eligibility{}, fmt.Errorf("failed to look up eligibility: %w", err)
	}

	c, err := single(matches)
	if err != nil {
		logger.WarnContext(ctx, "Eligibility lookup did not resolve to a single customer", slog.Int("matches", len(matches)))
		return Eligibility{}, err
	}
	return ToEligibility(c), nil
}

func (s *customerService) GetByDocumentNumber(ctx context.Context, documentNumber string) (Response, error) {
	documentNumber = strings.TrimSpace(documentNumber)
	if documentNumber == "" {
		return Response{}, apperrors.MissingField("documentNumber")
	}
	s.logger.InfoContext(ctx, "Attempting to get customer by document number")

	matches, err := s.repo.FindByDocumentNumberActive(ctx, documentNumber)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error finding customer by document number", slog.Any("error", err))
		return Response{}, fmt.Errorf("failed to find customer by document number: %w", err)
	}

	c, err := single(matches)
	if err != nil {
		s.logger.WarnContext(ctx, "Document number did not resolve to a single customer", slog.Int("matches", len(matches)))
		return Response{}, err
	}
	return ToResponse(c), nil
}

func (s *customerService) findByID(ctx context.Context, logger *slog.Logger, id string) (Customer, error) {
	if strings.TrimSpace(id) == "" {
		return Customer{}, apperrors.MissingField("id")
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return Customer{}, apperrors.NotFound("customer %s not found", id)
		}
		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return Customer{}, fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	return c, nil
}

// single enforces that a document resolves to exactly one active customer.
func single(matches []Customer) (Customer, error) {
	switch len(matches) {
	case 0:
		return Customer{}, apperrors.NotFound("no active customer found for document")
	case 1:
		return matches[0], nil
	default:
		return Customer{}, apperrors.Conflict("%d active customers share this document", len(matches))
	}
}
