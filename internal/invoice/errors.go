package invoice

import (
	"fmt"
	"net/http"
)

// FailureKind classifies the ways one extraction request can fail. Every
// failure the pipeline returns is exactly one of these; no unstructured
// fault crosses the transport boundary.
type FailureKind int

const (
	// InvalidInput covers rejected uploads: wrong MIME type or oversized
	// payload. Always detected before any network call.
	InvalidInput FailureKind = iota + 1
	// Misconfigured means no usable model credential is present and demo
	// mode was not selected.
	Misconfigured
	// ModelUnavailable covers network failures, timeouts, and external
	// service errors during invocation.
	ModelUnavailable
	// NoDataExtracted means normalization completed but produced an all-null
	// record, which callers treat as a failure rather than an empty answer.
	NoDataExtracted
)

// ExtractionError is the structured failure outcome of one extraction call.
// Message is short, specific, and non-technical so a human can decide
// whether to retry, pick a different file, or report a configuration
// problem.
type ExtractionError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// HTTPStatus maps the failure kind to its wire status code.
func (e *ExtractionError) HTTPStatus() int {
	switch e.Kind {
	case InvalidInput:
		return http.StatusBadRequest
	case NoDataExtracted:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
