package invoice

import (
	"time"

	"github.com/vectralogic/invoice-extractor/internal/vision"
)

// Invoice is a stored extraction result tied to the uploaded file it came
// from, keyed by the identity that uploaded it.
type Invoice struct {
	ID          string        `json:"id"`
	Owner       string        `json:"owner"`
	Record      vision.Record `json:"record"`
	Confidence  int           `json:"confidence"` // completeness percentage
	Filename    string        `json:"filename"`
	ContentType string        `json:"content_type"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ExtractionResult is the outcome of one successful pipeline run. It is
// produced once per request and read-only afterward.
type ExtractionResult struct {
	Record       vision.Record
	Confidence   int // one of 0, 25, 50, 75, 100
	RawModelText string
}
