package constants

// DocStatus is the canonical processing status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusUploaded  DocStatus = "UPLOADED"  // bytes stored, pipeline not yet run
	DocStatusProcessed DocStatus = "PROCESSED" // OCR + extraction completed (possibly with empty text)
	DocStatusFailed    DocStatus = "FAILED"    // persistence-level failure; extraction itself never fails
)
