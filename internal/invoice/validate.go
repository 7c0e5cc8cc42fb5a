package invoice

// MaxUploadBytes is the inclusive upload size limit (10 MiB).
const MaxUploadBytes = 10 << 20

// allowedMIMETypes is the exact accepted set. Anything else, including an
// unset or incorrectly sniffed type, is rejected.
var allowedMIMETypes = map[string]struct{}{
	"image/png":       {},
	"image/jpeg":      {},
	"application/pdf": {},
}

// ValidateUpload enforces the upload policy before any model I/O: a model
// call is never spent on invalid input. The type check runs before the size
// check so the two failures stay distinguishable to callers.
func ValidateUpload(mimeType string, sizeBytes int64) *ExtractionError {
	if _, ok := allowedMIMETypes[mimeType]; !ok {
		return &ExtractionError{
			Kind:    InvalidInput,
			Message: "Invalid file type. Please upload PNG, JPG, or PDF files.",
		}
	}
	if sizeBytes > MaxUploadBytes {
		return &ExtractionError{
			Kind:    InvalidInput,
			Message: "File too large. Maximum size is 10MB.",
		}
	}
	return nil
}
