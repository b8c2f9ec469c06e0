package service

import "context"

type sessionCtxKey struct{}

// WithSession attaches the request's session service to ctx so that code far
// from the transport layer (the upstream 401 hook) can reach it.
func WithSession(ctx context.Context, s *SessionService) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// FromContext returns the session service attached to ctx, or nil.
func FromContext(ctx context.Context) *SessionService {
	s, _ := ctx.Value(sessionCtxKey{}).(*SessionService)
	return s
}
