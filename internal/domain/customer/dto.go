// internal/domain/customer/dto.go
package customer

type CreateCustomerRequest struct {
	FullName      string `json:"full_name"`
	PreferredName string `json:"preferred_name"`
	EmailAddress  string `json:"email_address"`
	PhoneNumber   string `json:"phone_number"`
}

// UpdateCustomerRequest replaces all four mutable fields together; there are
// no partial updates.
type UpdateCustomerRequest struct {
	FullName      string `json:"full_name"`
	PreferredName string `json:"preferred_name"`
	EmailAddress  string `json:"email_address"`
	PhoneNumber   string `json:"phone_number"`
}

// Validate constructs the value types from the raw request fields. The first
// construction failure wins.
func (r *CreateCustomerRequest) Validate() (*Stub, error) {
	return newStub(r.FullName, r.PreferredName, r.EmailAddress, r.PhoneNumber)
}

func (r *UpdateCustomerRequest) Validate() (*Stub, error) {
	return newStub(r.FullName, r.PreferredName, r.EmailAddress, r.PhoneNumber)
}

func newStub(fullName, preferredName, emailAddress, phoneNumber string) (*Stub, error) {
	fn, err := NewFullName(fullName)
	if err != nil {
		return nil, err
	}
	pn, err := NewPreferredName(preferredName)
	if err != nil {
		return nil, err
	}
	email, err := NewEmailAddress(emailAddress)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhoneNumber(phoneNumber)
	if err != nil {
		return nil, err
	}
	return &Stub{
		FullName:      fn,
		PreferredName: pn,
		EmailAddress:  email,
		PhoneNumber:   phone,
	}, nil
}
