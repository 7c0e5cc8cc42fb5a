package vision

import (
	"context"
	"errors"
)

var (
	// ErrMisconfigured means no usable model credential is present and demo
	// mode was not selected. Calls fail before any network I/O.
	ErrMisconfigured = errors.New("vision model is not configured")

	// ErrUnavailable means the model could not be reached, returned a service
	// error, or did not answer within the request budget.
	ErrUnavailable = errors.New("vision model unavailable")
)

// PlaceholderKey is the credential literal that selects demo mode when it
// appears in configuration instead of a real API key.
const PlaceholderKey = "YOUR_GEMINI_API_KEY"

// Invoker sends an invoice document to a vision-language model and returns
// the model's raw text response.
type Invoker interface {
	// Invoke carries the document bytes, tagged with their MIME type, plus
	// the extraction prompt to the model.
	Invoke(ctx context.Context, data []byte, mimeType string) (string, error)
	// Close releases any client resources.
	Close() error
}

// Config selects which Invoker implementation to build.
type Config struct {
	APIKey string
	Model  string
	Demo   bool
}

// NewInvoker returns the live, demo, or unconfigured invoker. Demo is chosen
// only by the explicit flag or the recognized placeholder credential; an
// absent credential yields an invoker whose calls fail as misconfigured
// rather than silently falling back to canned data.
func NewInvoker(cfg Config) (Invoker, error) {
	if cfg.Demo || cfg.APIKey == PlaceholderKey {
		return NewDemo(), nil
	}
	if cfg.APIKey == "" {
		return Unconfigured{}, nil
	}
	return NewGemini(cfg.APIKey, cfg.Model)
}

// Unconfigured rejects every invocation without attempting a network call.
type Unconfigured struct{}

// Invoke always returns ErrMisconfigured.
func (Unconfigured) Invoke(context.Context, []byte, string) (string, error) {
	return "", ErrMisconfigured
}

// Close is a no-op.
func (Unconfigured) Close() error { return nil }
