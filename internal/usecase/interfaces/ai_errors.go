package interfaces

import "errors"

// Sentinel errors shared by all AI-backed gateways. Infrastructure maps
// provider failures onto these; handlers map them onto HTTP statuses.
var (
	// ErrAINotConfigured means no API key (or model) is configured.
	ErrAINotConfigured = errors.New("ai gateway not configured")
	// ErrAIUnavailable covers transport and provider-side failures.
	ErrAIUnavailable = errors.New("ai provider unavailable")
	// ErrAIRateLimited is returned when the provider throttles us.
	ErrAIRateLimited = errors.New("ai provider rate limited")
	// ErrAITimeout is returned when the call exceeds its deadline.
	ErrAITimeout = errors.New("ai provider timed out")
	// ErrAIMalformedResponse means the model answered but the payload could
	// not be parsed into the expected structure.
	ErrAIMalformedResponse = errors.New("ai response malformed")
)
