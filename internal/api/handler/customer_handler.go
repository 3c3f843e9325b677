package handler

import (
	"customers-service/internal/api/handler/dto"
	"customers-service/internal/domain/customer"
	"customers-service/internal/pkg/apperrors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func getCustomerIDFromURL(r *http.Request) (string, error) {
	id := chi.URLParam(r, "customerID")
	if id == "" {
		return "", fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	return id, nil
}

func (h *CustomerHandler) logServiceError(r *http.Request, msg string, err error) {
	level := slog.LevelWarn
	if statusFor(err) >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, msg, slog.Any("error", err))
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Creates a PERSONAL or BUSINESS customer. The segment always starts as STANDARD.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer creation request"
// @Success 201 {object} customer.Response "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Missing field, invalid payload or business rule violation"
// @Failure 409 {object} dto.ErrorResponse "An active customer already holds the document"
// @Failure 500 {object} dto.ErrorResponse "Internal server error during creation"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		h.logServiceError(r, "Service failed to create customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.String("customerID", created.ID))
	respondJSON(w, http.StatusCreated, created)
}

// GetCustomer handles GET /customers/{customerID}
// @Summary Retrieve customer details
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} customer.Response "Customer details retrieved"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		h.logServiceError(r, "Service failed to get customer", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Lists customers filtered by type and segment, sorted and paginated.
// @Tags Customers
// @Produce json
// @Param type query string false "Customer type" Enums(PERSONAL, BUSINESS)
// @Param segment query string false "Customer segment" Enums(STANDARD, VIP, PYME)
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size (1-100)" default(20)
// @Param sort query string false "Sort field" Enums(createdAt, firstName, lastName, businessName)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Success 200 {array} customer.Response "List of customers"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid list query", slog.Any("error", err))
		respondError(w, err)
		return
	}

	customers, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logServiceError(r, "Service failed to list customers", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

func parseListQuery(r *http.Request) (customer.ListQuery, error) {
	values := r.URL.Query()
	q := customer.ListQuery{
		Sort:      values.Get("sort"),
		Direction: values.Get("direction"),
	}

	if raw := values.Get("type"); raw != "" {
		t, err := customer.ParseType(raw)
		if err != nil {
			return q, err
		}
		q.Type = &t
	}
	if raw := values.Get("segment"); raw != "" {
		s, err := customer.ParseSegment(raw)
		if err != nil {
			return q, err
		}
		q.Segment = &s
	}

	var err error
	if q.Page, err = optionalInt(values.Get("page"), "page"); err != nil {
		return q, err
	}
	if q.Size, err = optionalInt(values.Get("size"), "size"); err != nil {
		return q, err
	}
	return q, nil
}

func optionalInt(raw, field string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be an integer")
	}
	return &n, nil
}

// UpdateCustomer handles PUT /customers/{customerID}
// @Summary Replace a customer
// @Description Fully updates a customer. The segment is mandatory.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Customer update request"
// @Success 200 {object} customer.Response "Customer updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or business rule violation"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Document already belongs to another active customer"
// @Failure 422 {object} dto.ErrorResponse "Segment missing or not allowed for the customer type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}
	logger := h.logger.With(slog.String("customerID", customerID))

	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), customerID, req.ToDomain())
	if err != nil {
		h.logServiceError(r, "Service failed to update customer", err)
		respondError(w, err)
		return
	}

	logger.InfoContext(r.Context(), "Customer updated successfully")
	respondJSON(w, http.StatusOK, updated)
}

// DeleteCustomer handles DELETE /customers/{customerID}
// @Summary Soft-delete a customer
// @Description Marks the customer inactive. Deleting an inactive customer succeeds without changes.
// @Tags Customers
// @Param customerID path string true "Customer ID"
// @Success 204 "Customer deactivated"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		h.logServiceError(r, "Service failed to delete customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deactivated successfully", slog.String("customerID", customerID))
	w.WriteHeader(http.StatusNoContent)
}

// GetEligibility handles GET /customers/eligibility
// @Summary Customer eligibility by document
// @Description Resolves the single active customer holding the document.
// @Tags Customers
// @Produce json
// @Param documentType query string true "Document type" Enums(DNI, RUC, CE)
// @Param documentNumber query string true "Document number"
// @Success 200 {object} customer.Eligibility "Eligibility projection"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "No active customer holds the document"
// @Failure 409 {object} dto.ErrorResponse "More than one active customer holds the document"
// @Router /customers/eligibility [get]
func (h *CustomerHandler) GetEligibility(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	var docType customer.DocumentType
	if raw := values.Get("documentType"); raw != "" {
		parsed, err := customer.ParseDocumentType(raw)
		if err != nil {
			respondError(w, err)
			return
		}
		docType = parsed
	}

	eligibility, err := h.service.Eligibility(r.Context(), docType, values.Get("documentNumber"))
	if err != nil {
		h.logServiceError(r, "Service failed to resolve eligibility", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, eligibility)
}

// GetCustomerByDocumentNumber handles GET /customers/by-document/{documentNumber}
// @Summary Find the active customer by document number
// @Tags Customers
// @Produce json
// @Param documentNumber path string true "Document number"
// @Success 200 {object} customer.Response "Customer details retrieved"
// @Failure 404 {object} dto.ErrorResponse "No active customer holds the document number"
// @Failure 409 {object} dto.ErrorResponse "More than one active customer holds the document number"
// @Router /customers/by-document/{documentNumber} [get]
func (h *CustomerHandler) GetCustomerByDocumentNumber(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByDocumentNumber(r.Context(), chi.URLParam(r, "documentNumber"))
	if err != nil {
		h.logServiceError(r, "Service failed to find customer by document number", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
