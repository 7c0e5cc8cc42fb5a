package vision

import "context"

// demoResponse is the canned model output served in demo mode: a complete
// extraction of a canonical sample invoice.
const demoResponse = `{"vendor":"Globex Freight Co.","date":"2024-06-01","amount":"1842.50","currency":"USD"}`

// Demo implements the Invoker interface without any network access. It
// exists so the system is runnable and testable without live credentials,
// and is only ever selected by explicit configuration.
type Demo struct{}

// NewDemo creates a new Demo Invoker instance.
func NewDemo() Demo { return Demo{} }

// Invoke returns the fixed canned response for any document.
func (Demo) Invoke(context.Context, []byte, string) (string, error) {
	return demoResponse, nil
}

// Close is a no-op.
func (Demo) Close() error { return nil }
