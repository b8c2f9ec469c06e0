package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/userportal/gateway/internal/api/metrics"
	"github.com/userportal/gateway/internal/core/domain"
	"github.com/userportal/gateway/internal/core/ports"
)

// Store keys for the persisted session pair. The two are written and cleared
// together; a session never exists with one and not the other.
const (
	storeKeyToken = "token"
	storeKeyUser  = "user"
)

// SessionState is the snapshot the route guard and handlers consume.
type SessionState struct {
	Loading       bool
	Authenticated bool
	Admin         bool
	Profile       *domain.UserProfile
}

// SessionService owns the authenticated-identity lifecycle of one logical
// session: restore on first touch, login, register, logout, and the derived
// flags. State is persisted through the SessionStore port so the same logic
// runs against redis in production and an in-memory fake in tests.
type SessionService struct {
	store ports.SessionStore
	auth  ports.AuthAPI
	log   zerolog.Logger

	mu       sync.Mutex
	restored bool
	session  *domain.Session
}

func NewSessionService(store ports.SessionStore, auth ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{store: store, auth: auth, log: log}
}

// State returns the current snapshot. Loading is true until Restore has run.
// Admin is always recomputed from the profile, never cached on its own.
func (s *SessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SessionState{Loading: !s.restored}
	if s.session != nil {
		st.Authenticated = true
		st.Admin = s.session.Profile.IsAdmin
		st.Profile = s.session.Profile
	}
	return st
}

// Token returns the session's bearer token, empty when anonymous.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Restore loads the persisted token+profile pair. It runs once per instance
// and never fails outward: any read or parse problem is logged and the
// session is treated as anonymous. A half-written pair (one key without the
// other) is cleared rather than trusted.
func (s *SessionService) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		return
	}
	s.restored = true

	token, tokenErr := s.store.Get(ctx, storeKeyToken)
	userRaw, userErr := s.store.Get(ctx, storeKeyUser)

	switch {
	case tokenErr == nil && userErr == nil:
		profile, err := domain.ParseProfile([]byte(userRaw))
		if err != nil {
			s.log.Warn().Err(err).Msg("stored profile unreadable, dropping session")
			s.clearLocked(ctx)
			return
		}
		s.session = &domain.Session{Token: token, Profile: profile}

	case errors.Is(tokenErr, ports.ErrKeyNotFound) && errors.Is(userErr, ports.ErrKeyNotFound):
		// No stored session: plain anonymous start.

	default:
		if tokenErr != nil && !errors.Is(tokenErr, ports.ErrKeyNotFound) {
			s.log.Error().Err(tokenErr).Msg("session restore failed")
		}
		if userErr != nil && !errors.Is(userErr, ports.ErrKeyNotFound) {
			s.log.Error().Err(userErr).Msg("session restore failed")
		}
		s.clearLocked(ctx)
	}
}

// Login authenticates against the upstream and, on success, persists the
// token and derived profile together before exposing the new state. On
// failure the session is left exactly as it was and the normalized error
// propagates to the caller.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	res, err := s.auth.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	profile := domain.ProfileFromAPI(res.User)
	blob, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, storeKeyUser, string(blob)); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, storeKeyToken, res.Token); err != nil {
		// Roll the profile back: never leave one half of the pair persisted.
		_ = s.store.Delete(ctx, storeKeyUser)
		return nil, err
	}

	s.restored = true
	s.session = &domain.Session{Token: res.Token, Profile: profile}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", profile.Username).Bool("admin", profile.IsAdmin).Msg("login")
	return res, nil
}

// Register forwards the renamed account-creation payload upstream. Validation
// happens in the caller; no auto-login on success.
func (s *SessionService) Register(ctx context.Context, in domain.RegistrationInput) (map[string]any, error) {
	return s.auth.CreateAccount(ctx, in.AccountCreation())
}

// Logout clears the persisted pair and the in-memory session. Idempotent:
// logging out twice leaves the same anonymous state as once.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restored = true
	s.clearLocked(ctx)
}

// Invalidate applies the logout side effect after an authentication-rejected
// upstream response. Every API call that sees a 401 lands here, not only the
// session service's own calls.
func (s *SessionService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.session != nil
	s.restored = true
	s.clearLocked(ctx)
	s.mu.Unlock()

	if wasAuthenticated {
		metrics.SessionInvalidationsTotal.Inc()
		s.log.Info().Msg("session invalidated by upstream 401")
	}
}

func (s *SessionService) clearLocked(ctx context.Context) {
	if err := s.store.Delete(ctx, storeKeyToken); err != nil {
		s.log.Error().Err(err).Msg("clear session token")
	}
	if err := s.store.Delete(ctx, storeKeyUser); err != nil {
		s.log.Error().Err(err).Msg("clear session profile")
	}
	s.session = nil
}
