// internal/domain/customer/entity.go
package customer

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Customer is the persisted record. DeletedAt never leaves the service: a
// soft-deleted row is invisible to every read, so callers only ever see
// active customers.
type Customer struct {
	ID            uuid.UUID     `json:"customer_id" db:"customer_id"`
	FullName      FullName      `json:"full_name" db:"full_name"`
	PreferredName PreferredName `json:"preferred_name" db:"preferred_name"`
	EmailAddress  EmailAddress  `json:"email_address" db:"email_address"`
	PhoneNumber   PhoneNumber   `json:"phone_number" db:"phone_number"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt     sql.NullTime  `json:"-" db:"deleted_at"`
}

// Stub carries the validated fields of a customer about to be written.
// Timestamps are assigned by the database, not here.
type Stub struct {
	FullName      FullName
	PreferredName PreferredName
	EmailAddress  EmailAddress
	PhoneNumber   PhoneNumber
}
