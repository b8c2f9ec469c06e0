package validation

import (
	"time"

	"github.com/userportal/gateway/internal/core/domain"
)

// Registration field names, in declared form order.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldCity            = "city"
	FieldBirthdate       = "birthdate"
	FieldPostalCode      = "postal_code"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

var fieldOrder = []string{
	FieldFirstName,
	FieldLastName,
	FieldCity,
	FieldBirthdate,
	FieldPostalCode,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
}

// FieldErrors maps a field name to a human-readable message. A field absent
// from the map is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// FieldError pairs a field with its message for ordered rendering.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Ordered returns the errors in declared field order, so the rendered list is
// deterministic regardless of map iteration.
func (fe FieldErrors) Ordered() []FieldError {
	out := make([]FieldError, 0, len(fe))
	for _, f := range fieldOrder {
		if msg, ok := fe[f]; ok {
			out = append(out, FieldError{Field: f, Message: msg})
		}
	}
	return out
}

// ValidateRegistration re-validates the full registration input at submit
// time. Checks run in declared field order, then the cross-field checks:
// password confirmation, adult age, postal-code format. A field keeps its
// first message; later checks never overwrite it.
func ValidateRegistration(in domain.RegistrationInput, now time.Time) FieldErrors {
	fe := FieldErrors{}

	if !IsValidName(in.FirstName) {
		fe[FieldFirstName] = "first name is invalid"
	}
	if !IsValidSurname(in.LastName) {
		fe[FieldLastName] = "last name is invalid"
	}
	if !IsValidCity(in.City) {
		fe[FieldCity] = "city is invalid"
	}
	if !IsNotEmpty(in.Birthdate) {
		fe[FieldBirthdate] = "birthdate is required"
	}
	if !IsNotEmpty(in.PostalCode) {
		fe[FieldPostalCode] = "postal code is required"
	}
	if !IsValidEmail(in.Email) {
		fe[FieldEmail] = "email is invalid"
	}
	if !IsValidPassword(in.Password) {
		fe[FieldPassword] = "password must be at least 6 characters"
	}
	if in.Password != in.ConfirmPassword {
		fe.setIfAbsent(FieldConfirmPassword, "passwords do not match")
	}
	if _, seen := fe[FieldBirthdate]; !seen && !IsAdultAt(in.Birthdate, now) {
		fe[FieldBirthdate] = "you must be at least 18 years old"
	}
	if _, seen := fe[FieldPostalCode]; !seen && !IsValidFrenchPostalCode(in.PostalCode) {
		fe[FieldPostalCode] = "postal code must be 5 digits"
	}

	return fe
}

// ValidateField checks a single field as it is being edited. Returns an empty
// string when the value is acceptable. Cross-field checks (password match)
// belong to ValidateRegistration.
func ValidateField(name, value string, now time.Time) string {
	switch name {
	case FieldFirstName:
		if !IsValidName(value) {
			return "first name is invalid"
		}
	case FieldLastName:
		if !IsValidSurname(value) {
			return "last name is invalid"
		}
	case FieldCity:
		if !IsValidCity(value) {
			return "city is invalid"
		}
	case FieldBirthdate:
		if !IsAdultAt(value, now) {
			return "you must be at least 18 years old"
		}
	case FieldPostalCode:
		if !IsValidFrenchPostalCode(value) {
			return "postal code must be 5 digits"
		}
	case FieldEmail:
		if !IsValidEmail(value) {
			return "email is invalid"
		}
	case FieldPassword:
		if !IsValidPassword(value) {
			return "password must be at least 6 characters"
		}
	}
	return ""
}

func (fe FieldErrors) setIfAbsent(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}
