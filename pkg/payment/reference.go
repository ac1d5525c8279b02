package payment

import "strings"

// fallbackReferenceLength is the number of leading characters used when the
// identifier has fewer than three dash-separated segments.
const fallbackReferenceLength = 10

// ExtractReference derives the payment reference number ("poziv na broj")
// from a document identifier.
//
//	ExtractReference("ACC-SINV-2024-00001") // "SINV-2024-00001"
//	ExtractReference("005-2024-00123")      // "005-2024-00123"
//	ExtractReference("AB")                  // "AB"
//
// It is total: every input yields a result.
func ExtractReference(identifier string) string {
	parts := strings.Split(identifier, "-")
	switch {
	case len(parts) >= 4:
		return strings.Join(parts[1:4], "-")
	case len(parts) >= 3:
		return strings.Join(parts[len(parts)-3:], "-")
	}

	runes := []rune(identifier)
	if len(runes) > fallbackReferenceLength {
		runes = runes[:fallbackReferenceLength]
	}
	return string(runes)
}
