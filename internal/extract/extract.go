// Package extract pulls typed, named fields out of raw OCR text.
//
// Every field is resolved independently through an ordered list of
// pattern rules; the first rule that matches wins, and a field with no
// matching rule is present with a nil value. Extraction is total: the
// only non-field result is the error sentinel for empty input text.
package extract

import (
	"strings"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

// Fields is the structured result of parsing one document's text.
// Values are scalars (string, float64, int) or nil for "not found".
type Fields map[string]any

// Field names shared with the API and the persisted extracted_json.
const (
	FieldDocType    = "doc_type"
	FieldError      = "error"
	FieldRawSnippet = "raw_text_snippet"

	FieldStudentName   = "student_name"
	FieldUniversity    = "university"
	FieldCourse        = "course"
	FieldPercentage    = "percentage"
	FieldGPA           = "gpa"
	FieldYearOfPassing = "year_of_passing"

	FieldBankName         = "bank_name"
	FieldAccountHolder    = "account_holder"
	FieldAvailableBalance = "available_balance"
	FieldDate             = "date"
)

// MsgNoText is the sentinel error value returned for empty input.
const MsgNoText = "No text extracted from document."

// snippetLen caps the diagnostic raw_text_snippet.
const snippetLen = 300

// Extract parses category-specific fields out of text. Empty text
// yields the {error: ...} sentinel immediately. Categories other than
// academic fall back to financial extraction; the HTTP boundary is
// responsible for rejecting unknown categories, this function stays
// total over its inputs.
func Extract(docType constants.DocType, text string) Fields {
	if text == "" {
		return Fields{FieldError: MsgNoText}
	}

	t := normalize(text)

	var fields Fields
	if docType == constants.DocTypeAcademic {
		fields = academicFields(t)
	} else {
		fields = financialFields(t)
	}

	fields[FieldRawSnippet] = snippet(text)
	return fields
}

// normalize folds carriage returns into newlines before any pattern
// matching runs.
func normalize(text string) string {
	return strings.ReplaceAll(text, "\r", "\n")
}

// snippet returns the first 300 characters of the original
// (non-normalized) text for diagnostic display.
func snippet(text string) string {
	r := []rune(text)
	if len(r) <= snippetLen {
		return text
	}
	return string(r[:snippetLen])
}

// HasError reports whether f is the empty-text sentinel result.
func (f Fields) HasError() bool {
	_, ok := f[FieldError]
	return ok
}

// Number returns the named field as a float64 when it holds any
// numeric scalar. Extraction stores float64/int directly; values that
// round-tripped through JSON come back as float64.
func (f Fields) Number(name string) (float64, bool) {
	switch v := f[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
