package upstream

// APIError is the normalized shape every upstream failure is converted to
// before it reaches transport code. Callers branch on Message and Status,
// never on raw transport errors.
type APIError struct {
	// Message is chosen, in priority order, from the response body's
	// `detail`, `error`, or `message` field, then an HTTP status-line
	// summary, then a generic connectivity message.
	Message string
	// Status is the HTTP status of the final attempt, 0 when no response was
	// ever received.
	Status int
	// Cause carries the underlying failure as a diagnostic. It never
	// participates in message selection.
	Cause error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
