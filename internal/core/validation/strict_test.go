package validation

import (
	"errors"
	"testing"
)

func TestStrictValidators_WrongType(t *testing.T) {
	cases := []struct {
		name  string
		call  func(any) (bool, error)
		field string
	}{
		{"name", StrictName, "name"},
		{"surname", StrictSurname, "surname"},
		{"email", StrictEmail, "email"},
		{"city", StrictCity, "city"},
		{"postalCode", StrictPostalCode, "postalCode"},
	}
	for _, c := range cases {
		for _, bad := range []any{nil, 42, 3.14, true, []string{"x"}} {
			_, err := c.call(bad)
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("%s(%v): expected *ParamError, got %v", c.name, bad, err)
			}
			if pe.Field != c.field {
				t.Fatalf("%s: field = %q, want %q", c.name, pe.Field, c.field)
			}
		}
	}
}

func TestStrictValidators_WellTyped(t *testing.T) {
	ok, err := StrictEmail("test@example.com")
	if err != nil || !ok {
		t.Fatalf("valid email: ok=%v err=%v", ok, err)
	}
	ok, err = StrictEmail("not-an-email")
	if err != nil || ok {
		t.Fatalf("invalid email: ok=%v err=%v", ok, err)
	}

	// The strict postal-code check is the range-bounded one.
	ok, err = StrictPostalCode("00100")
	if err != nil || ok {
		t.Fatalf("out-of-range postal code: ok=%v err=%v", ok, err)
	}
	ok, err = StrictPostalCode("75000")
	if err != nil || !ok {
		t.Fatalf("valid postal code: ok=%v err=%v", ok, err)
	}
}

func TestParamError_Message(t *testing.T) {
	err := &ParamError{Field: "email"}
	if err.Error() != "invalid parameter: email" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
