package validation

// Strict variants of the field predicates, preserved as a distinct contract.
// Unlike the lenient set they fail closed: handing them anything but a string
// is a contract violation by the caller and yields a typed *ParamError rather
// than a boolean. Callers that depend on this behavior exist; do not merge
// these with the lenient set.

// ParamError reports that a strict validator was handed a value of the wrong
// type.
type ParamError struct {
	Field string
}

func (e *ParamError) Error() string {
	return "invalid parameter: " + e.Field
}

// StrictName validates a name, rejecting non-string input with *ParamError.
func StrictName(v any) (bool, error) {
	return strictString("name", v, IsValidName)
}

// StrictSurname validates a surname, rejecting non-string input with *ParamError.
func StrictSurname(v any) (bool, error) {
	return strictString("surname", v, IsValidSurname)
}

// StrictEmail validates an email, rejecting non-string input with *ParamError.
func StrictEmail(v any) (bool, error) {
	return strictString("email", v, IsValidEmail)
}

// StrictCity validates a city, rejecting non-string input with *ParamError.
func StrictCity(v any) (bool, error) {
	return strictString("city", v, IsValidCity)
}

// StrictPostalCode validates a postal code against the range-bounded check,
// rejecting non-string input with *ParamError.
func StrictPostalCode(v any) (bool, error) {
	return strictString("postalCode", v, IsValidPostalCodeInRange)
}

func strictString(field string, v any, pred func(string) bool) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, &ParamError{Field: field}
	}
	return pred(s), nil
}
