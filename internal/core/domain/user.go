package domain

import (
	"encoding/json"
	"strconv"
)

const RoleAdmin = "admin"

// Credentials carries a login attempt. Ephemeral: never persisted, never logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationInput is the raw registration form as submitted by the client.
type RegistrationInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Birthdate       string `json:"birthdate"`
	City            string `json:"city"`
	PostalCode      string `json:"postalCode"`
}

// AccountCreationRequest is the payload the upstream account-creation endpoint
// expects. Field renaming relative to RegistrationInput (username=email,
// name=firstName) is part of the upstream contract and must not change.
type AccountCreationRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	LastName   string `json:"lastName"`
	Birthdate  string `json:"birthdate"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// AccountCreation maps the form input onto the upstream payload, dropping the
// confirmation password.
func (r RegistrationInput) AccountCreation() AccountCreationRequest {
	return AccountCreationRequest{
		Username:   r.Email,
		Password:   r.Password,
		Name:       r.FirstName,
		LastName:   r.LastName,
		Birthdate:  r.Birthdate,
		City:       r.City,
		PostalCode: r.PostalCode,
	}
}

// UserProfile is the cached identity attached to a session.
type UserProfile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	LastName   string `json:"lastName"`
	IsAdmin    bool   `json:"isAdmin"`
	Birthdate  string `json:"birthdate,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// Session is the client-held proof of authentication: an opaque bearer token
// plus the cached profile. Token and profile exist together or not at all.
type Session struct {
	Token   string
	Profile *UserProfile
}

// ProfileFromAPI builds a UserProfile from a raw upstream user object.
//
// The upstream has emitted two shapes over time: a document-store era one
// (`_id`, `lastName`, `role`) and a relational one (`id`, `last_name`,
// `is_admin`). Sessions persisted under either shape must keep decoding, so
// both are honored permanently. IsAdmin is always derived here, never trusted
// from a cached flag elsewhere.
func ProfileFromAPI(raw map[string]any) *UserProfile {
	p := &UserProfile{
		ID:       pickString(raw, "_id", "id"),
		Username: pickString(raw, "username"),
		Name:     pickString(raw, "name"),
		LastName: pickString(raw, "lastName", "last_name"),
		IsAdmin:  pickString(raw, "role") == RoleAdmin || pickBool(raw, "is_admin", "isAdmin"),
	}
	p.Birthdate = pickString(raw, "birthdate")
	p.City = pickString(raw, "city")
	p.PostalCode = pickString(raw, "postalCode", "postal_code")
	p.CreatedAt = pickString(raw, "createdAt", "created_at")
	return p
}

// ParseProfile decodes a persisted profile blob. It accepts both the
// gateway's own serialization and raw upstream user objects written by
// earlier versions.
func ParseProfile(data []byte) (*UserProfile, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return ProfileFromAPI(raw), nil
}

func pickString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func pickBool(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := raw[k].(bool); ok && v {
			return true
		}
	}
	return false
}
