package extract

import (
	"strings"
	"testing"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

func TestExtractEmptyTextSentinel(t *testing.T) {
	for _, dt := range []constants.DocType{constants.DocTypeAcademic, constants.DocTypeFinancial} {
		t.Run(string(dt), func(t *testing.T) {
			fields := Extract(dt, "")
			if len(fields) != 1 {
				t.Fatalf("fields = %v, want only the error sentinel", fields)
			}
			if fields[FieldError] != MsgNoText {
				t.Fatalf("error = %v, want %q", fields[FieldError], MsgNoText)
			}
			if !fields.HasError() {
				t.Fatal("HasError() = false")
			}
		})
	}
}

func TestExtractUnknownCategoryFallsBackToFinancial(t *testing.T) {
	fields := Extract(constants.DocType("passport"), "State Bank\nAvailable Balance: 900")
	if fields[FieldDocType] != string(constants.DocTypeFinancial) {
		t.Fatalf("doc_type = %v, want financial fallback", fields[FieldDocType])
	}
	if got, ok := fields.Number(FieldAvailableBalance); !ok || got != 900.0 {
		t.Fatalf("available_balance = %v", fields[FieldAvailableBalance])
	}
}

func TestExtractSnippetCap(t *testing.T) {
	long := strings.Repeat("a", 400)
	fields := Extract(constants.DocTypeAcademic, long)

	snip, ok := fields[FieldRawSnippet].(string)
	if !ok {
		t.Fatalf("raw_text_snippet = %T", fields[FieldRawSnippet])
	}
	if len([]rune(snip)) != 300 {
		t.Fatalf("snippet length = %d, want 300", len([]rune(snip)))
	}
}

func TestExtractSnippetShortTextUntouched(t *testing.T) {
	fields := Extract(constants.DocTypeAcademic, "GPA: 8.0")
	if fields[FieldRawSnippet] != "GPA: 8.0" {
		t.Fatalf("raw_text_snippet = %v", fields[FieldRawSnippet])
	}
}

func TestExtractSnippetKeepsCarriageReturns(t *testing.T) {
	// The snippet reflects the raw OCR output, not the normalized text.
	fields := Extract(constants.DocTypeAcademic, "line one\r\nline two")
	if fields[FieldRawSnippet] != "line one\r\nline two" {
		t.Fatalf("raw_text_snippet = %q", fields[FieldRawSnippet])
	}
}
