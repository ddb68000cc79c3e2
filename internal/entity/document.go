package entity

import "time"

// Document is one uploaded file plus everything the pipeline derived
// from it. Extracted starts as the extraction-time snapshot and may
// later be partially overwritten by reviewer corrections.
type Document struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	DocType          string    `gorm:"size:20;not null;index" json:"doc_type"`
	OriginalFilename string    `gorm:"size:255" json:"original_filename"`
	StoredPath       string    `gorm:"size:512;not null" json:"stored_path"`
	ContentSHA256    string    `gorm:"size:64;index" json:"content_sha256"`
	OCRText          string    `gorm:"type:text" json:"ocr_text"`
	Extracted        JSONMap   `gorm:"type:jsonb" json:"extracted_data"`
	OCRConfidence    float64   `json:"ocr_confidence"`
	Status           string    `gorm:"size:20;not null" json:"status"`
	NeedsReview      bool      `json:"needs_review"`
	UploadedAt       time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}
