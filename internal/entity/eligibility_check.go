package entity

import "time"

// EligibilityCheck records one run of the eligibility rules against a
// document and a set of IELTS scores. Rows are append-only history;
// new requests create new checks and never mutate prior ones.
type EligibilityCheck struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	DocumentID  uint       `gorm:"not null;index" json:"document_id"`
	Document    *Document  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IELTSScores JSONMap    `gorm:"type:jsonb;not null" json:"ielts_scores"`
	IsEligible  bool       `json:"is_eligible"`
	Reasons     StringList `gorm:"type:jsonb" json:"reasons"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
