package vision

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// pdfToPNG renders the first page of a PDF as PNG bytes. Freight invoices
// are overwhelmingly single page.
func pdfToPNG(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// preparePayload returns the bytes and the image format tag to send inline
// with the prompt. PNG and JPEG uploads pass through untouched; PDFs are
// rendered to PNG first because the inline model part carries an image
// format, not a document format.
func preparePayload(data []byte, mimeType string) ([]byte, string, error) {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "application/pdf":
		pngData, err := pdfToPNG(data)
		if err != nil {
			return nil, "", err
		}
		return pngData, "png", nil
	case "image/png":
		return data, "png", nil
	default:
		// Upload validation admits exactly one more type: JPEG.
		return data, "jpeg", nil
	}
}
