package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vectralogic/invoice-extractor/internal/vision"
)

// extractResponse is the wire envelope for the extraction endpoint.
type extractResponse struct {
	Success bool           `json:"success"`
	Data    *vision.Record `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// writeJSON writes a JSON response with CORS headers set
func writeJSON(w http.ResponseWriter, status int, body any) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// corsError writes a plain error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// resolveContentType determines the upload's MIME type from the part header,
// falling back to the filename extension when the client sent nothing useful.
func resolveContentType(contentType, filename string) string {
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	if contentType == "" || contentType == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		case ".png":
			contentType = "image/png"
		case ".pdf":
			contentType = "application/pdf"
		default:
			contentType = "application/octet-stream"
		}
	}

	// Common non-standard spelling
	if contentType == "image/jpg" {
		contentType = "image/jpeg"
	}

	return contentType
}

// handleExtract handles the multipart invoice upload, runs the extraction
// pipeline, and persists the result on success.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, extractResponse{Error: "Error parsing form"})
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		writeJSON(w, http.StatusBadRequest, extractResponse{Error: "No file provided"})
		return
	}
	defer f.Close()

	mimeType := resolveContentType(header.Header.Get("Content-Type"), header.Filename)

	// Upload policy runs before the file is even read, and always before any
	// model call.
	if verr := ValidateUpload(mimeType, header.Size); verr != nil {
		writeJSON(w, verr.HTTPStatus(), extractResponse{Error: verr.Message})
		return
	}

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		writeJSON(w, http.StatusInternalServerError, extractResponse{Error: "Error reading file. Please try again."})
		return
	}

	inv, err := s.service.ProcessInvoice(r.Context(), s.owner(r), header.Filename, data, mimeType)
	if err != nil {
		var exErr *ExtractionError
		if errors.As(err, &exErr) {
			slog.Error("Extraction failed", "filename", header.Filename, "kind", exErr.Kind, "error", err)
			writeJSON(w, exErr.HTTPStatus(), extractResponse{Error: exErr.Message})
			return
		}
		slog.Error("Error processing invoice", "filename", header.Filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, extractResponse{Error: "An unexpected error occurred"})
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{Success: true, Data: &inv.Record})
}

// handleListInvoices returns a list of all stored invoices
func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := s.service.ListInvoices()
	if err != nil {
		slog.Error("Error listing invoices", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(invoices); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleGetInvoice returns a single stored invoice
func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Invoice ID required", http.StatusBadRequest)
		return
	}
	inv, err := s.service.GetInvoice(id)
	if err != nil {
		corsError(w, "Invoice not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(inv); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleGetInvoiceFile returns the originally uploaded file for an invoice
func (s *Server) handleGetInvoiceFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Invoice ID required", http.StatusBadRequest)
		return
	}
	data, contentType, err := s.service.GetInvoiceFile(id)
	if err != nil {
		corsError(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// handleExportInvoice returns an invoice's record as a spreadsheet download
func (s *Server) handleExportInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Invoice ID required", http.StatusBadRequest)
		return
	}

	baseName := r.URL.Query().Get("name")
	if baseName == "" {
		baseName = "invoice_" + id
	}

	filename, data, err := s.service.ExportInvoice(id, baseName)
	if err != nil {
		slog.Error("Error exporting invoice", "id", id, "error", err)
		corsError(w, "Invoice not found", http.StatusNotFound)
		return
	}

	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// handleDeleteInvoice deletes a stored invoice and its file
func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		corsError(w, "Invoice ID required", http.StatusBadRequest)
		return
	}
	if err := s.service.DeleteInvoice(id); err != nil {
		corsError(w, "Error deleting invoice", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "invoice-extractor",
	})
}
