package chat

import "campus-chatbot/internal/model"

// Source is the pipeline stage that produced the reply.
type Source string

const (
	SourceMentalHealth    Source = "mental_health"
	SourceFAQ             Source = "faq"
	SourceClassifier      Source = "classifier"
	SourceFallback        Source = "fallback"
	SourceConnectionError Source = "connection_error"
)

// ChatInput is one inbound message.
type ChatInput struct {
	Message   string
	SessionID string
	IPAddress string
	UserAgent string
}

// ChatOutput is the reply and how it was produced.
type ChatOutput struct {
	Reply            string
	DetectedLanguage model.Language
	ConversationID   string
	ConcernDetected  bool
	ConcernLevel     model.ConcernLevel
	ConfidenceScore  *float64
	Intent           string
	IsFallback       bool
	Source           Source
}

// FeedbackInput rates a conversation. Fields not used by Type are ignored.
type FeedbackInput struct {
	ConversationID string
	Type           model.FeedbackType
	IsHelpful      *bool
	StarRating     *int
	Text           string
	IPAddress      string
	UserAgent      string
}

// FeedbackOutput reports the stored feedback.
type FeedbackOutput struct {
	Feedback model.Feedback
	Created  bool
}

// Config holds the pipeline's tunable constants.
type Config struct {
	// WorkingLanguage is the language the classifier understands.
	WorkingLanguage model.Language
	// FAQConfidence is stored on conversations answered from the FAQ.
	FAQConfidence float64
	// LowConfidence marks classifier replies below it as fallbacks.
	LowConfidence float64
}
