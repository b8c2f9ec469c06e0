package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"test@example.com", true},
		{"  test@example.com  ", true},
		{"first.last@sub.domain.org", true},
		{"test@.com", false},
		{"test.com", false},
		{"test@com", false},
		{"te st@example.com", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.in); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Jean", true},
		{"Jean-Pierre", true},
		{"O'Connor", true},
		{"Héloïse", true},
		{"De La Fontaine", true},
		{"  Anna  ", true},
		{"A", false},
		{"J3an", false},
		{"", false},
		{"   ", false},
	}
	for _, c := range cases {
		if got := IsValidName(c.in); got != c.want {
			t.Errorf("IsValidName(%q) = %v, want %v", c.in, got, c.want)
		}
		if got := IsValidSurname(c.in); got != c.want {
			t.Errorf("IsValidSurname(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidCity(t *testing.T) {
	if !IsValidCity("Paris") {
		t.Fatalf("expected Paris to be valid")
	}
	if IsValidCity("P") {
		t.Fatalf("single character should be invalid")
	}
	if IsValidCity("   ") {
		t.Fatalf("whitespace should be invalid")
	}
	if !IsValidCity("75") {
		t.Fatalf("lenient check accepts digits")
	}
	if IsValidCityStrict("75") {
		t.Fatalf("strict check rejects digits")
	}
	if !IsValidCityStrict("Aix-en-Provence") {
		t.Fatalf("strict check accepts hyphenated names")
	}
}

func TestIsValidFrenchPostalCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"75000", true},
		{"00100", true},
		{"1234", false},
		{"123456", false},
		{"ABCDE", false},
		{"7500A", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidFrenchPostalCode(c.in); got != c.want {
			t.Errorf("IsValidFrenchPostalCode(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidPostalCodeInRange(t *testing.T) {
	// Range check rejects 00000–00999 while the plain check accepts them.
	if !IsValidFrenchPostalCode("00100") {
		t.Fatalf("plain check should accept 00100")
	}
	if IsValidPostalCodeInRange("00100") {
		t.Fatalf("range check should reject 00100")
	}
	if !IsValidPostalCodeInRange("01000") {
		t.Fatalf("range check should accept 01000")
	}
	if !IsValidPostalCodeInRange("99999") {
		t.Fatalf("range check should accept 99999")
	}
	if IsValidPostalCodeInRange("ABCDE") {
		t.Fatalf("range check should reject non-digits")
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("12345") {
		t.Fatalf("five characters should be invalid")
	}
	if !IsValidPassword("123456") {
		t.Fatalf("six characters should be valid")
	}
}

func TestIsNotEmpty(t *testing.T) {
	if IsNotEmpty("") || IsNotEmpty("   ") {
		t.Fatalf("blank input should be empty")
	}
	if !IsNotEmpty("x") {
		t.Fatalf("non-blank input should not be empty")
	}
}
