package maskutil

import "strings"

// Mask keeps the first visibleStart and last visibleEnd runes of secret and
// stars the rest. Secrets too short to keep anything hidden are fully masked.
func Mask(secret string, visibleStart, visibleEnd int) string {
	if secret == "" {
		return ""
	}

	runes := []rune(secret)
	if len(runes) <= 2*(visibleStart+visibleEnd) {
		return strings.Repeat("*", len(runes))
	}

	hidden := len(runes) - visibleStart - visibleEnd
	return string(runes[:visibleStart]) + strings.Repeat("*", hidden) + string(runes[len(runes)-visibleEnd:])
}
