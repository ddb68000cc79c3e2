package constants

import "strings"

// DocType is the document category driving field extraction.
type DocType string

const (
	DocTypeAcademic  DocType = "academic"
	DocTypeFinancial DocType = "financial"
)

var allDocTypes = []DocType{DocTypeAcademic, DocTypeFinancial}

// DocTypeStrings returns the accepted doc_type values for validation messages.
func DocTypeStrings() []string {
	out := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		out[i] = string(dt)
	}
	return out
}

// ParseDocType canonicalizes a user-supplied document category.
func ParseDocType(input string) (DocType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, dt := range allDocTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return "", false
}
