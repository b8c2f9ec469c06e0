package handler

import (
	"github.com/userportal/gateway/internal/core/domain"
	"github.com/userportal/gateway/internal/core/validation"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email           string `json:"email"           validate:"required"`
	Password        string `json:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	FirstName       string `json:"first_name"      validate:"required"`
	LastName        string `json:"last_name"       validate:"required"`
	Birthdate       string `json:"birthdate"       validate:"required"`
	City            string `json:"city"            validate:"required"`
	PostalCode      string `json:"postalCode"      validate:"required"`
}

func (r registerRequest) toDomain() domain.RegistrationInput {
	return domain.RegistrationInput{
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Birthdate:       r.Birthdate,
		City:            r.City,
		PostalCode:      r.PostalCode,
	}
}

type validateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type validateFieldResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type createPostRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Response-only types owned by the transport layer. Kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type sessionResponse struct {
	Authenticated bool                `json:"authenticated"`
	Admin         bool                `json:"admin"`
	User          *domain.UserProfile `json:"user,omitempty"`
}

type loginResponse struct {
	User *domain.UserProfile `json:"user"`
}

type registerFailureResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields"`
}

type userListResponse struct {
	Users []*domain.UserProfile `json:"users"`
}

type postListResponse struct {
	Posts []domain.Post `json:"posts"`
}
