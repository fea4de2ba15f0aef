package translator

import "context"

// Translator detects and translates between the supported languages.
// Implementations never fail outward: detection defaults to English and a
// failed translation returns the input unchanged.
type Translator interface {
	DetectLanguage(ctx context.Context, text string) string
	Translate(ctx context.Context, text, target string) string
}
