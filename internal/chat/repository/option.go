package repository

import "campus-chatbot/internal/model"

// CreateConversationOptions holds parameters for logging one exchange.
type CreateConversationOptions struct {
	SessionID        string
	UserMessage      string
	BotResponse      string
	DetectedLanguage model.Language
	ConfidenceScore  *float64
	Intent           string
	IsFallback       bool
}

// UpsertUnansweredOptions identifies the question by (UserMessage, DetectedLanguage).
type UpsertUnansweredOptions struct {
	UserMessage      string
	DetectedLanguage model.Language
	SessionID        string
	ConfidenceScore  *float64
	Intent           string
	BotResponse      string
}

// GetOrCreateFeedbackOptions identifies feedback by (ConversationID, Type).
// The remaining fields seed a new row.
type GetOrCreateFeedbackOptions struct {
	ConversationID string
	SessionID      string
	Type           model.FeedbackType
	UserAgent      string
	IPAddress      string
}
