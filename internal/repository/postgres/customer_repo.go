// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"custman-service/internal/domain/customer"
	xerrors "custman-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code raised by the partial unique
// index on email_address. The index is the final arbiter for email
// uniqueness; the EmailExists pre-checks below only exist to produce a
// friendlier error on the common path.
const uniqueViolation = "23505"

const customerColumns = `customer_id, full_name, preferred_name, email_address, phone_number, created_at, updated_at, deleted_at`

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

var _ customer.Repository = (*CustomerRepository)(nil)

// ListActive returns all active customers, most recently touched first.
func (r *CustomerRepository) ListActive(ctx context.Context) ([]customer.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE deleted_at IS NULL
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []customer.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Create inserts a new customer with a freshly generated id. The email
// pre-check and the insert are not atomic; a concurrent writer loses at the
// unique index, which we translate to the same ErrDuplicateEmail.
func (r *CustomerRepository) Create(ctx context.Context, stub *customer.Stub) (*customer.Customer, error) {
	exists, err := r.EmailExists(ctx, stub.EmailAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, xerrors.ErrDuplicateEmail
	}

	query := `
		INSERT INTO customer (customer_id, full_name, preferred_name, email_address, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns + `
	`

	row := r.db.QueryRow(
		ctx, query,
		uuid.New(), stub.FullName, stub.PreferredName, stub.EmailAddress, stub.PhoneNumber,
	)

	c, err := scanCustomer(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, xerrors.ErrDuplicateEmail
		}
		if errors.Is(err, pgx.ErrNoRows) {
			// The insert should always return the new row.
			return nil, xerrors.Wrap(xerrors.ErrStorage, "insert returned no row")
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return c, nil
}

// FindByID retrieves an active customer by id.
func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE customer_id = $1 AND deleted_at IS NULL
	`

	c, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return c, nil
}

// FindByEmail retrieves an active customer by email address.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email customer.EmailAddress) (*customer.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE email_address = $1 AND deleted_at IS NULL
	`

	c, err := scanCustomer(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}

	return c, nil
}

// EmailExists checks whether an active customer already holds the email.
// Soft-deleted rows do not count, so an email frees up on deletion.
func (r *CustomerRepository) EmailExists(ctx context.Context, email customer.EmailAddress) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM customer
			WHERE email_address = $1 AND deleted_at IS NULL
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

// Update overwrites all four mutable fields of an active customer and
// refreshes updated_at, then re-reads the row so the caller gets the
// database-assigned timestamp back.
func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, stub *customer.Stub) (*customer.Customer, error) {
	holder, err := r.FindByEmail(ctx, stub.EmailAddress)
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if holder != nil && holder.ID != id {
		return nil, xerrors.ErrDuplicateEmail
	}

	query := `
		UPDATE customer
		SET full_name = $1, preferred_name = $2, email_address = $3, phone_number = $4,
		    updated_at = now()
		WHERE customer_id = $5 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(
		ctx, query,
		stub.FullName, stub.PreferredName, stub.EmailAddress, stub.PhoneNumber, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, xerrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, xerrors.ErrNotFound
	}

	updated, err := r.FindByID(ctx, id)
	if errors.Is(err, xerrors.ErrNotFound) {
		// We just updated the row; it has to be there.
		return nil, xerrors.Wrap(xerrors.ErrStorage, fmt.Sprintf("failed to re-read customer %s after update", id))
	}
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SoftDelete marks an active customer as deleted. Returns false when the id
// is unknown or the customer was already deleted.
func (r *CustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE customer SET deleted_at = now() WHERE customer_id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete customer: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.FullName, &c.PreferredName, &c.EmailAddress, &c.PhoneNumber,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
