package chat

import "campus-chatbot/internal/model"

const (
	DefaultFAQConfidence = 0.95
	DefaultLowConfidence = 0.5

	IntentMentalHealth    = "mental_health_support"
	IntentFAQ             = "faq_match"
	IntentEmptyResponse   = "empty_response"
	IntentConnectionError = "connection_error"

	// AnonymousSessionPrefix precedes the client IP in generated session ids.
	AnonymousSessionPrefix = "anon_"
	// MaxSessionIDLength is the widest session id the conversation store accepts, in characters.
	MaxSessionIDLength = 100

	MinStarRating = 1
	MaxStarRating = 5
)

// FallbackPhrases mark a classifier reply as a non-answer. Compared against the lowercased reply.
var FallbackPhrases = []string{
	"sorry, i did not understand",
	"i'm not sure i understand",
	"could you please rephrase",
	"i didn't get that",
	"i don't understand",
	"can you rephrase",
}

// NoReplyMessages answer a message the classifier returned nothing for.
var NoReplyMessages = map[model.Language]string{
	model.LanguageEnglish: "Sorry, I did not understand.",
	model.LanguageShona:   "Pamusoroi, handina kunzwisisa izvozvo. Mungandipindure muimwe nzira here?",
}

// ConnectionErrorMessages answer when the classifier cannot be reached.
var ConnectionErrorMessages = map[model.Language]string{
	model.LanguageEnglish: "I'm sorry, I'm having trouble connecting right now. Please try again.",
	model.LanguageShona:   "Pamusoroi, ndiri kunetsa kubatana izvozvi. Edza zvakare.",
}

// Localized returns the message for lang, or the English one.
func Localized(messages map[model.Language]string, lang model.Language) string {
	if m, ok := messages[lang]; ok {
		return m
	}
	return messages[model.LanguageEnglish]
}
