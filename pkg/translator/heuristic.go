package translator

import (
	"context"
	"strings"

	"campus-chatbot/pkg/keyword"
)

// IsLikelyShona reports whether text contains a common Shona word. Words are
// matched whole, so "seizure" does not count as "sei".
func IsLikelyShona(text string) bool {
	for _, w := range shonaIndicators {
		if keyword.Contains(text, w) {
			return true
		}
	}
	return false
}

// Heuristic detects Shona by indicator words and never translates.
// It is used when no translation service is configured.
type Heuristic struct{}

func (Heuristic) DetectLanguage(_ context.Context, text string) string {
	if strings.TrimSpace(text) != "" && IsLikelyShona(text) {
		return LangShona
	}
	return LangEnglish
}

func (Heuristic) Translate(_ context.Context, text, _ string) string {
	return text
}
