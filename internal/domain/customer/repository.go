// internal/domain/customer/repository.go
package customer

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Reads only ever see active rows (deleted_at IS NULL).
	ListActive(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, email EmailAddress) (*Customer, error)
	EmailExists(ctx context.Context, email EmailAddress) (bool, error)

	Create(ctx context.Context, stub *Stub) (*Customer, error)
	Update(ctx context.Context, id uuid.UUID, stub *Stub) (*Customer, error)

	// SoftDelete reports whether a row was actually deleted; an id that is
	// missing or already deleted is a normal false, not an error.
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}
