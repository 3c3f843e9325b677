package postgres

import (
	"context"
	"customers-service/internal/domain/customer"
	"customers-service/internal/pkg/apperrors"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pgxmockExpectationsNotMetMsg = "pgxmock expectations were not met"

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var customerColumnNames = []string{
	"id", "type", "segment", "first_name", "last_name", "business_name", "display_name",
	"email", "document_type", "document_number", "phone",
	"address_line1", "address_city", "address_district", "address_country",
	"active", "created_at", "deleted_at",
}

var createdAt = time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

func customerFixture() customer.Customer {
	name := "Ana Perez"
	return customer.Customer{
		ID:             "c-1",
		Type:           customer.TypePersonal,
		Segment:        customer.SegmentStandard,
		FirstName:      "Ana",
		LastName:       "Perez",
		DisplayName:    &name,
		Email:          "ana@example.com",
		DocumentType:   customer.DocumentDNI,
		DocumentNumber: "12345678",
		Address:        customer.Address{City: "Lima"},
		Active:         true,
		CreatedAt:      createdAt,
	}
}

func customerRows(cs ...customer.Customer) *pgxmock.Rows {
	rows := pgxmock.NewRows(customerColumnNames)
	for _, c := range cs {
		rows.AddRow(
			c.ID, string(c.Type), string(c.Segment), c.FirstName, c.LastName, c.BusinessName, c.DisplayName,
			c.Email, string(c.DocumentType), c.DocumentNumber, c.Phone,
			c.Address.Line1, c.Address.City, c.Address.District, c.Address.Country,
			c.Active, c.CreatedAt, c.DeletedAt,
		)
	}
	return rows
}

func setupCustomerRepo(t *testing.T) (context.Context, *CustomerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCustomerRepository(mockPool, logger)
	repo.newID = func() string { return "generated-id" }

	return ctx, repo, mockPool
}

func TestNewCustomerRepository_NilPool(t *testing.T) {
	assert.Panics(t, func() { NewCustomerRepository(nil, logger) })
}

func TestExistsActiveByDocument(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE document_type = $1 AND document_number = $2 AND active = TRUE")).
		WithArgs("DNI", "12345678").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsActiveByDocument(ctx, customer.Document{Type: customer.DocumentDNI, Number: "12345678"})

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestExistsActiveByDocumentExcludingID(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("AND id <> $3")).
		WithArgs("RUC", "20123456789", "c-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsActiveByDocumentExcludingID(ctx, customer.Document{Type: customer.DocumentRUC, Number: "20123456789"}, "c-1")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDReturnOne(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	expected := customerFixture()
	mockPool.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id = $1")).
		WithArgs("c-1").
		WillReturnRows(customerRows(expected))

	got, err := repo.FindByID(ctx, "c-1")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(ctx, "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindAllActiveByDocument(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	first := customerFixture()
	second := customerFixture()
	second.ID = "c-2"
	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE document_type = $1 AND document_number = $2 AND active = TRUE")).
		WithArgs("DNI", "12345678").
		WillReturnRows(customerRows(first, second))

	got, err := repo.FindAllActiveByDocument(ctx, customer.Document{Type: customer.DocumentDNI, Number: "12345678"})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "c-2", got[1].ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindByDocumentNumberActiveEmpty(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE document_number = $1 AND active = TRUE")).
		WithArgs("00000000").
		WillReturnRows(customerRows())

	got, err := repo.FindByDocumentNumberActive(ctx, "00000000")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestBuildFilteredQuery(t *testing.T) {
	business := customer.TypeBusiness
	pyme := customer.SegmentPYME

	t.Run("No filters ascending", func(t *testing.T) {
		query, args := buildFilteredQuery(customer.Filter{}, customer.Sort{Field: customer.SortByCreatedAt})
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY created_at ASC, id ASC")
		assert.Empty(t, args)
	})

	t.Run("Both filters descending", func(t *testing.T) {
		query, args := buildFilteredQuery(
			customer.Filter{Type: &business, Segment: &pyme},
			customer.Sort{Field: customer.SortByBusinessName, Descending: true},
		)
		assert.Contains(t, query, "WHERE type = $1 AND segment = $2")
		assert.Contains(t, query, "ORDER BY business_name DESC, id ASC")
		assert.Equal(t, []any{"BUSINESS", "PYME"}, args)
	})

	t.Run("Segment only", func(t *testing.T) {
		query, args := buildFilteredQuery(customer.Filter{Segment: &pyme}, customer.Sort{Field: customer.SortByLastName})
		assert.Contains(t, query, "WHERE segment = $1")
		assert.Contains(t, query, "ORDER BY last_name ASC")
		assert.Equal(t, []any{"PYME"}, args)
	})

	t.Run("Unknown sort field", func(t *testing.T) {
		query, _ := buildFilteredQuery(customer.Filter{}, customer.Sort{Field: "email; DROP TABLE customers"})
		assert.Contains(t, query, "ORDER BY created_at ASC")
		assert.NotContains(t, query, "DROP")
	})
}

func TestFindFiltered(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	personal := customer.TypePersonal
	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE type = $1 ORDER BY first_name ASC, id ASC")).
		WithArgs("PERSONAL").
		WillReturnRows(customerRows(customerFixture()))

	got, err := repo.FindFiltered(ctx, customer.Filter{Type: &personal}, customer.Sort{Field: customer.SortByFirstName})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewCustomerAssignsID(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	c := customerFixture()
	c.ID = ""
	args := customerArgs(c)
	args[0] = "generated-id"

	mockPool.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Save(ctx, c)

	require.NoError(t, err)
	assert.Equal(t, "generated-id", saved.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewCustomerUniqueViolation(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	c := customerFixture()
	c.ID = ""
	mockPool.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: ActiveDocumentIndex})

	_, err := repo.Save(ctx, c)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.Contains(t, err.Error(), ActiveDocumentIndex)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	c := customerFixture()
	deletedAt := createdAt.Add(time.Hour)
	c.Active, c.DeletedAt = false, &deletedAt

	mockPool.ExpectExec(regexp.QuoteMeta("UPDATE customers")).
		WithArgs(customerArgs(c)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	saved, err := repo.Save(ctx, c)

	require.NoError(t, err)
	assert.Equal(t, c, saved)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCustomerNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta("UPDATE customers")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := repo.Save(ctx, customerFixture())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCustomerDatabaseError(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta("UPDATE customers")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Save(ctx, customerFixture())

	assert.ErrorIs(t, err, apperrors.ErrDatabase)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DB_ERROR", appErr.Code)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindDuplicateActiveDocuments(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(*) > 1")).
		WillReturnRows(pgxmock.NewRows([]string{"document_type", "document_number", "count"}).
			AddRow("DNI", "12345678", int64(2)).
			AddRow("RUC", "20123456789", int64(3)))

	dups, err := repo.FindDuplicateActiveDocuments(ctx)

	require.NoError(t, err)
	assert.Equal(t, []customer.DuplicateDocument{
		{Document: customer.Document{Type: customer.DocumentDNI, Number: "12345678"}, Count: 2},
		{Document: customer.Document{Type: customer.DocumentRUC, Number: "20123456789"}, Count: 3},
	}, dups)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestTranslateDBError(t *testing.T) {
	assert.NoError(t, translateDBError(nil, logger))
	assert.ErrorIs(t, translateDBError(pgx.ErrNoRows, logger), apperrors.ErrNotFound)
	assert.ErrorIs(t, translateDBError(&pgconn.PgError{Code: "23505"}, logger), apperrors.ErrAlreadyExists)
	assert.ErrorIs(t, translateDBError(&pgconn.PgError{Code: "42P01"}, logger), apperrors.ErrDatabase)
	assert.ErrorIs(t, translateDBError(errors.New("boom"), logger), apperrors.ErrDatabase)

	var appErr *apperrors.AppError
	require.ErrorAs(t, translateDBError(&pgconn.PgError{Code: "42P01"}, logger), &appErr)
	assert.Equal(t, "DB_ERROR", appErr.Code)
	assert.Equal(t, "db error code 42P01", appErr.Message)
}
