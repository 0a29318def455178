// internal/domain/customer/types.go
package customer

import (
	"fmt"
	"regexp"
	"strings"

	xerrors "custman-service/internal/pkg/errors"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// E.164 international phone number format
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// FullName is a customer's legal name. It may never be blank.
type FullName string

// PreferredName is the name the customer goes by. It may never be blank.
type PreferredName string

// EmailAddress is a syntactically valid email address. The value is stored
// exactly as given: no trimming, no case folding.
type EmailAddress string

// PhoneNumber is an E.164 formatted phone number.
type PhoneNumber string

func NewFullName(value string) (FullName, error) {
	if strings.TrimSpace(value) == "" {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, "full name cannot be blank")
	}
	return FullName(value), nil
}

func NewPreferredName(value string) (PreferredName, error) {
	if strings.TrimSpace(value) == "" {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, "preferred name cannot be blank")
	}
	return PreferredName(value), nil
}

func NewEmailAddress(value string) (EmailAddress, error) {
	if strings.TrimSpace(value) == "" {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, "email address cannot be blank")
	}
	if !emailRegex.MatchString(value) {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, fmt.Sprintf("invalid email address format: %q", value))
	}
	return EmailAddress(value), nil
}

func NewPhoneNumber(value string) (PhoneNumber, error) {
	if strings.TrimSpace(value) == "" {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, "phone number cannot be blank")
	}
	if !phoneRegex.MatchString(value) {
		return "", xerrors.Wrap(xerrors.ErrInvalidInput, fmt.Sprintf("phone number %q must conform to the E.164 format", value))
	}
	return PhoneNumber(value), nil
}

func (n FullName) String() string      { return string(n) }
func (n PreferredName) String() string { return string(n) }
func (e EmailAddress) String() string  { return string(e) }
func (p PhoneNumber) String() string   { return string(p) }
