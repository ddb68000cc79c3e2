package constants

import "strings"

// File formats the OCR adapter dispatches on.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the default allowed file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to an OCR format.
// Anything that is not a PDF takes the image path.
func MapExtToFormat(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return PDF
	}
	return IMAGE
}

// AllowedExt reports whether the extension is in the upload allow-list.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
