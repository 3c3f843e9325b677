package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"customers-service/internal/domain/customer"
	"customers-service/internal/infrastructure/monitoring"
	"customers-service/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, type, segment, first_name, last_name, business_name, display_name,
        email, document_type, document_number, phone,
        address_line1, address_city, address_district, address_country,
        active, created_at, deleted_at`

var sortColumns = map[customer.SortField]string{
	customer.SortByCreatedAt:    "created_at",
	customer.SortByFirstName:    "first_name",
	customer.SortByLastName:     "last_name",
	customer.SortByBusinessName: "business_name",
}

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
	newID  func() string
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
		newID:  uuid.NewString,
	}
}

func observe(queryName string, start time.Time, err error) {
	status := "success"
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		status = "error"
	}
	monitoring.RecordDBQuery(queryName, status, time.Since(start))
}

func (r *CustomerRepository) ExistsActiveByDocument(ctx context.Context, doc customer.Document) (exists bool, err error) {
	defer func(start time.Time) { observe("exists_active_by_document", start, err) }(time.Now())

	query := `
        SELECT EXISTS (
            SELECT 1 FROM customers
            WHERE document_type = $1 AND document_number = $2 AND active = TRUE
        )`

	if err = r.db.QueryRow(ctx, query, string(doc.Type), doc.Number).Scan(&exists); err != nil {
		return false, translateDBError(err, r.logger)
	}
	return exists, nil
}

func (r *CustomerRepository) ExistsActiveByDocumentExcludingID(ctx context.Context, doc customer.Document, excludeID string) (exists bool, err error) {
	defer func(start time.Time) { observe("exists_active_by_document_excluding_id", start, err) }(time.Now())

	query := `
        SELECT EXISTS (
            SELECT 1 FROM customers
            WHERE document_type = $1 AND document_number = $2 AND active = TRUE AND id <> $3
        )`

	if err = r.db.QueryRow(ctx, query, string(doc.Type), doc.Number, excludeID).Scan(&exists); err != nil {
		return false, translateDBError(err, r.logger)
	}
	return exists, nil
}

func (r *CustomerRepository) FindAllActiveByDocument(ctx context.Context, doc customer.Document) (_ []customer.Customer, err error) {
	defer func(start time.Time) { observe("find_all_active_by_document", start, err) }(time.Now())

	query := `SELECT ` + customerColumns + `
        FROM customers
        WHERE document_type = $1 AND document_number = $2 AND active = TRUE
        ORDER BY created_at, id`

	return r.queryCustomers(ctx, query, string(doc.Type), doc.Number)
}

func (r *CustomerRepository) FindByDocumentNumberActive(ctx context.Context, documentNumber string) (_ []customer.Customer, err error) {
	defer func(start time.Time) { observe("find_by_document_number_active", start, err) }(time.Now())

	query := `SELECT ` + customerColumns + `
        FROM customers
        WHERE document_number = $1 AND active = TRUE
        ORDER BY created_at, id`

	return r.queryCustomers(ctx, query, documentNumber)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (_ customer.Customer, err error) {
	defer func(start time.Time) { observe("find_customer_by_id", start, err) }(time.Now())

	r.logger.DebugContext(ctx, "Attempting to find customer by ID", slog.String("customerID", id))

	query := `SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.String("customerID", id))
			return customer.Customer{}, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, id)
		}
		r.logger.ErrorContext(ctx, "Failed to find customer by ID", slog.Any("error", err))
		return customer.Customer{}, translateDBError(err, r.logger)
	}
	return c, nil
}

func (r *CustomerRepository) FindFiltered(ctx context.Context, filter customer.Filter, sort customer.Sort) (_ []customer.Customer, err error) {
	defer func(start time.Time) { observe("find_customers_filtered", start, err) }(time.Now())

	query, args := buildFilteredQuery(filter, sort)
	return r.queryCustomers(ctx, query, args...)
}

func buildFilteredQuery(filter customer.Filter, sort customer.Sort) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Segment != nil {
		args = append(args, string(*filter.Segment))
		conditions = append(conditions, fmt.Sprintf("segment = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + customerColumns + ` FROM customers`)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}

	column, ok := sortColumns[sort.Field]
	if !ok {
		column = sortColumns[customer.SortByCreatedAt]
	}
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}
	// id keeps the order stable between pages.
	fmt.Fprintf(&b, " ORDER BY %s %s, id ASC", column, direction)

	return b.String(), args
}

func (r *CustomerRepository) Save(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	if c.ID == "" {
		return r.createCustomer(ctx, c)
	}
	return r.updateCustomer(ctx, c)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, c customer.Customer) (_ customer.Customer, err error) {
	defer func(start time.Time) { observe("insert_customer", start, err) }(time.Now())

	c.ID = r.newID()
	logCtx := r.logger.With(slog.String("customerID", c.ID))
	logCtx.InfoContext(ctx, "Attempting to insert new customer")

	query := `
        INSERT INTO customers (` + customerColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	if _, err = r.db.Exec(ctx, query, customerArgs(c)...); err != nil {
		translatedErr := translateDBError(err, logCtx)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Failed to insert customer due to unique constraint violation")
			return customer.Customer{}, translatedErr
		}
		logCtx.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return customer.Customer{}, fmt.Errorf("failed to insert customer: %w", translatedErr)
	}

	logCtx.InfoContext(ctx, "Customer inserted successfully")
	return c, nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, c customer.Customer) (_ customer.Customer, err error) {
	defer func(start time.Time) { observe("update_customer", start, err) }(time.Now())

	logCtx := r.logger.With(slog.String("customerID", c.ID))
	logCtx.InfoContext(ctx, "Attempting to update customer")

	query := `
        UPDATE customers
        SET type = $2,
            segment = $3,
            first_name = $4,
            last_name = $5,
            business_name = $6,
            display_name = $7,
            email = $8,
            document_type = $9,
            document_number = $10,
            phone = $11,
            address_line1 = $12,
            address_city = $13,
            address_district = $14,
            address_country = $15,
            active = $16,
            created_at = $17,
            deleted_at = $18
        WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, customerArgs(c)...)
	if err != nil {
		translatedErr := translateDBError(err, logCtx)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Failed to update customer due to unique constraint violation")
			return customer.Customer{}, translatedErr
		}
		logCtx.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return customer.Customer{}, fmt.Errorf("failed to update customer: %w", translatedErr)
	}

	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return customer.Customer{}, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, c.ID)
	}

	logCtx.InfoContext(ctx, "Customer updated successfully")
	return c, nil
}

func (r *CustomerRepository) FindDuplicateActiveDocuments(ctx context.Context) (_ []customer.DuplicateDocument, err error) {
	defer func(start time.Time) { observe("find_duplicate_active_documents", start, err) }(time.Now())

	query := `
        SELECT document_type, document_number, COUNT(*)
        FROM customers
        WHERE active = TRUE
        GROUP BY document_type, document_number
        HAVING COUNT(*) > 1
        ORDER BY document_type, document_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query duplicate active documents", slog.Any("error", err))
		return nil, translateDBError(err, r.logger)
	}
	defer rows.Close()

	var dups []customer.DuplicateDocument
	for rows.Next() {
		var (
			d     customer.DuplicateDocument
			count int64
		)
		if err = rows.Scan(&d.Document.Type, &d.Document.Number, &count); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan duplicate document row", slog.Any("error", err))
			return nil, translateDBError(err, r.logger)
		}
		d.Count = int(count)
		dups = append(dups, d)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating duplicate document rows", slog.Any("error", err))
		return nil, translateDBError(err, r.logger)
	}
	return dups, nil
}

func (r *CustomerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]customer.Customer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, translateDBError(err, r.logger)
	}
	defer rows.Close()

	customers := []customer.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, translateDBError(err, r.logger)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, translateDBError(err, r.logger)
	}
	return customers, nil
}

func scanCustomer(row pgx.Row) (customer.Customer, error) {
	var (
		c                         customer.Customer
		custType, segment, docTyp string
	)
	err := row.Scan(
		&c.ID,
		&custType,
		&segment,
		&c.FirstName,
		&c.LastName,
		&c.BusinessName,
		&c.DisplayName,
		&c.Email,
		&docTyp,
		&c.DocumentNumber,
		&c.Phone,
		&c.Address.Line1,
		&c.Address.City,
		&c.Address.District,
		&c.Address.Country,
		&c.Active,
		&c.CreatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return customer.Customer{}, err
	}
	c.Type = customer.Type(custType)
	c.Segment = customer.Segment(segment)
	c.DocumentType = customer.DocumentType(docTyp)
	c.CreatedAt = c.CreatedAt.UTC()
	if c.DeletedAt != nil {
		deletedAt := c.DeletedAt.UTC()
		c.DeletedAt = &deletedAt
	}
	return c, nil
}

func customerArgs(c customer.Customer) []any {
	return []any{
		c.ID,
		string(c.Type),
		string(c.Segment),
		c.FirstName,
		c.LastName,
		c.BusinessName,
		c.DisplayName,
		c.Email,
		string(c.DocumentType),
		c.DocumentNumber,
		c.Phone,
		c.Address.Line1,
		c.Address.City,
		c.Address.District,
		c.Address.Country,
		c.Active,
		c.CreatedAt,
		c.DeletedAt,
	}
}
