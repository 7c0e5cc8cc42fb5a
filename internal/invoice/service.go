package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vectralogic/invoice-extractor/internal/vision"
)

// IDGenerator generates unique IDs for invoices
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

type uuidIDGenerator struct{}

func (uuidIDGenerator) Generate() string {
	return uuid.New().String()
}

type defaultTimeSource struct{}

func (defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service runs the extraction pipeline and owns the persistence wrapper
// around it. Each call is independent; the service holds no per-request
// state, so concurrent requests need no coordination.
type Service struct {
	db          DB
	invoker     vision.Invoker
	storage     Storage
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, invoker vision.Invoker, storage Storage) *Service {
	return &Service{
		db:          db,
		invoker:     invoker,
		storage:     storage,
		idGenerator: uuidIDGenerator{},
		timeSource:  defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, invoker vision.Invoker, storage Storage, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		invoker:     invoker,
		storage:     storage,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// Extract runs one document through the pipeline: validate the upload,
// invoke the model, normalize its raw text, score completeness. Stages run
// strictly in that order with no automatic retries. An all-null record is a
// failure from the caller's perspective, not a valid empty answer.
func (s *Service) Extract(ctx context.Context, data []byte, mimeType string) (*ExtractionResult, error) {
	if verr := ValidateUpload(mimeType, int64(len(data))); verr != nil {
		return nil, verr
	}

	rawText, err := s.invoker.Invoke(ctx, data, mimeType)
	if err != nil {
		if errors.Is(err, vision.ErrMisconfigured) {
			return nil, &ExtractionError{
				Kind:    Misconfigured,
				Message: "Vision model API key not configured",
				Err:     err,
			}
		}
		return nil, &ExtractionError{
			Kind:    ModelUnavailable,
			Message: "Could not reach the vision model. Please try again.",
			Err:     err,
		}
	}

	record := vision.Normalize(rawText)
	if err := vision.CheckRecord(record); err != nil {
		// Advisory only: the model answered in an unusual shape.
		slog.Warn("Normalized record failed schema check", "error", err)
	}

	confidence := vision.Score(record)
	if confidence == 0 {
		return nil, &ExtractionError{
			Kind:    NoDataExtracted,
			Message: "Could not extract invoice data. Please ensure the image is clear and contains invoice information.",
		}
	}

	return &ExtractionResult{
		Record:       record,
		Confidence:   confidence,
		RawModelText: rawText,
	}, nil
}

// sanitizeFilename cleans up a filename by removing special characters and truncating length
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "invoice"
	}

	return base + ext
}

// ProcessInvoice extracts a document and, on success, stores the uploaded
// file and the resulting record keyed by its owner. Extraction failures
// leave nothing behind.
func (s *Service) ProcessInvoice(ctx context.Context, owner, filename string, data []byte, mimeType string) (*Invoice, error) {
	result, err := s.Extract(ctx, data, mimeType)
	if err != nil {
		return nil, err
	}

	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, sanitizeFilename(filename)), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	inv := &Invoice{
		ID:          id,
		Owner:       owner,
		Record:      result.Record,
		Confidence:  result.Confidence,
		Filename:    savedPath,
		ContentType: mimeType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.SaveInvoice(inv); err != nil {
		// Clean up file if database save fails
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("saving invoice to database: %w", err)
	}

	return inv, nil
}

// GetInvoice retrieves an invoice by ID
func (s *Service) GetInvoice(id string) (*Invoice, error) {
	inv, err := s.db.GetInvoice(id)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	return inv, nil
}

// ListInvoices returns all invoices
func (s *Service) ListInvoices() ([]*Invoice, error) {
	invoices, err := s.db.ListInvoices()
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return invoices, nil
}

// DeleteInvoice removes an invoice and its stored file
func (s *Service) DeleteInvoice(id string) error {
	inv, err := s.db.GetInvoice(id)
	if err != nil {
		return fmt.Errorf("getting invoice for deletion: %w", err)
	}

	if err := s.storage.Delete(inv.Filename); err != nil {
		// Log error but continue with database deletion
		slog.Warn("Failed to delete file", "filename", inv.Filename, "error", err)
	}

	if err := s.db.DeleteInvoice(id); err != nil {
		return fmt.Errorf("deleting invoice from database: %w", err)
	}
	return nil
}

// GetInvoiceFile retrieves the stored file data for an invoice
func (s *Service) GetInvoiceFile(id string) ([]byte, string, error) {
	inv, err := s.db.GetInvoice(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting invoice: %w", err)
	}

	data, err := s.storage.Get(inv.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting invoice file: %w", err)
	}

	return data, inv.ContentType, nil
}

// ExportInvoice renders an invoice's record as a downloadable workbook and
// returns the suggested filename with the bytes.
func (s *Service) ExportInvoice(id, baseName string) (string, []byte, error) {
	inv, err := s.db.GetInvoice(id)
	if err != nil {
		return "", nil, fmt.Errorf("getting invoice: %w", err)
	}
	return ExportXLSX(inv.Record, baseName)
}
