package extract

import "unicode/utf8"

// Confidence maps extracted-text length to a coarse score in
// {0.0, 0.3, 0.6, 0.8}. It is a placeholder proxy, not a statistical
// confidence: more text simply suggests the OCR pass found something.
func Confidence(text string) float64 {
	if text == "" {
		return 0.0
	}
	switch length := utf8.RuneCountInString(text); {
	case length < 100:
		return 0.3
	case length < 500:
		return 0.6
	default:
		return 0.8
	}
}
