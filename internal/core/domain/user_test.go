package domain

import (
	"encoding/json"
	"testing"
)

func TestAccountCreation_Renaming(t *testing.T) {
	in := RegistrationInput{
		FirstName:       "Jean",
		LastName:        "Dupont",
		Email:           "x@example.com",
		Password:        "motdepasse123",
		ConfirmPassword: "motdepasse123",
		Birthdate:       "2000-01-01",
		City:            "Paris",
		PostalCode:      "75000",
	}

	got, err := json.Marshal(in.AccountCreation())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"username":"x@example.com","password":"motdepasse123","name":"Jean","lastName":"Dupont","birthdate":"2000-01-01","city":"Paris","postalCode":"75000"}`
	if string(got) != want {
		t.Fatalf("payload mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestProfileFromAPI_RoleShape(t *testing.T) {
	p := ProfileFromAPI(map[string]any{
		"_id":      "abc123",
		"username": "admin@example.com",
		"name":     "Ada",
		"lastName": "Lovelace",
		"role":     "admin",
	})
	if p.ID != "abc123" {
		t.Fatalf("id = %q", p.ID)
	}
	if p.LastName != "Lovelace" {
		t.Fatalf("lastName = %q", p.LastName)
	}
	if !p.IsAdmin {
		t.Fatalf("role=admin should yield IsAdmin")
	}
}

func TestProfileFromAPI_FlagShape(t *testing.T) {
	p := ProfileFromAPI(map[string]any{
		"id":        float64(7),
		"username":  "user@example.com",
		"name":      "Jean",
		"last_name": "Dupont",
		"is_admin":  true,
	})
	if p.ID != "7" {
		t.Fatalf("numeric id should stringify, got %q", p.ID)
	}
	if p.LastName != "Dupont" {
		t.Fatalf("last_name = %q", p.LastName)
	}
	if !p.IsAdmin {
		t.Fatalf("is_admin=true should yield IsAdmin")
	}
}

func TestProfileFromAPI_NotAdmin(t *testing.T) {
	p := ProfileFromAPI(map[string]any{
		"id":       "1",
		"username": "user@example.com",
		"role":     "client",
		"is_admin": false,
	})
	if p.IsAdmin {
		t.Fatalf("non-admin shapes should not yield IsAdmin")
	}
}

func TestParseProfile(t *testing.T) {
	// A blob written by an earlier version in the raw upstream shape.
	blob := []byte(`{"_id":"x1","username":"u","name":"N","last_name":"L","is_admin":true}`)
	p, err := ParseProfile(blob)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.ID != "x1" || p.LastName != "L" || !p.IsAdmin {
		t.Fatalf("unexpected profile: %+v", p)
	}

	if _, err := ParseProfile([]byte("not json")); err == nil {
		t.Fatalf("expected error for malformed blob")
	}
}
