package actor

import (
	"errors"
	"strings"

	"arribaeats/internal/pkg/errs"
	"arribaeats/internal/pkg/guard"
)

const (
	// MinAge is the minimum age accepted at registration.
	MinAge = 18
	// MaxAge is the maximum age accepted at registration.
	MaxAge = 100
)

// ErrDetailsAreNotConstructed is returned when using Details that were not
// created via the NewDetails constructor.
var ErrDetailsAreNotConstructed = errors.New("Details must be created via NewDetails constructor")

// Details is the record of personal fields shared by every actor variant:
// name, age, email, mobile number, and credential secret.
//
// Email comparisons across the system are case-insensitive; NormalizedEmail
// returns the canonical lowercase form used by the uniqueness index. Field
// format validation (email/phone syntax) belongs to the presentation layer
// and is intentionally absent here.
type Details struct { //nolint:recvcheck //using for validation
	name   string
	age    int
	email  string
	mobile string
	secret string

	guard guard.ConstructorGuard
}

// NewDetails creates a validated Details record.
// Name, email, mobile, and secret must be non-empty; age must be within
// [MinAge, MaxAge]. Multiple violations are reported joined.
func NewDetails(name string, age int, email string, mobile string, secret string) (Details, error) {
	details := Details{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		details.setName(name),
		details.setAge(age),
		details.setEmail(email),
		details.setMobile(mobile),
		details.setSecret(secret),
	); err != nil {
		return Details{}, err
	}

	return details, nil
}

// Validate ensures the Details record was created through the constructor.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// Name returns the actor's display name.
func (d Details) Name() string {
	return d.name
}

// Age returns the actor's age.
func (d Details) Age() int {
	return d.age
}

// Email returns the email exactly as supplied at registration.
func (d Details) Email() string {
	return d.email
}

// NormalizedEmail returns the lowercase form of the email.
// All uniqueness checks and login lookups use this form.
func (d Details) NormalizedEmail() string {
	return NormalizeEmail(d.email)
}

// Mobile returns the actor's mobile number.
func (d Details) Mobile() string {
	return d.mobile
}

// VerifySecret reports whether the supplied secret matches the stored credential.
func (d Details) VerifySecret(secret string) bool {
	return d.secret != "" && d.secret == secret
}

// NormalizeEmail lowercases an email for case-insensitive comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *Details) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Details) setAge(age int) error {
	if age < MinAge || age > MaxAge {
		return errs.NewValueIsOutOfRangeError("age", age, MinAge, MaxAge)
	}
	d.age = age
	return nil
}

func (d *Details) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	d.email = email
	return nil
}

func (d *Details) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	d.mobile = mobile
	return nil
}

func (d *Details) setSecret(secret string) error {
	if secret == "" {
		return errs.NewValueIsRequiredError("secret")
	}
	d.secret = secret
	return nil
}
