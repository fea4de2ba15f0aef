package repository

import (
	"context"

	"campus-chatbot/internal/metrics"
	"campus-chatbot/internal/model"
)

// Repository is the composed interface for the chat data store.
type Repository interface {
	ConversationRepository
	UnansweredRepository
	FeedbackRepository
}

// ConversationRepository stores every answered message.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (model.Conversation, error)
	GetConversation(ctx context.Context, id string) (model.Conversation, error)
}

// UnansweredRepository tracks messages the bot could not answer.
type UnansweredRepository interface {
	// UpsertUnanswered creates the question with frequency 1, or bumps the
	// frequency of the existing (message, language) row and overwrites its details.
	UpsertUnanswered(ctx context.Context, opt UpsertUnansweredOptions) (model.UnansweredQuestion, error)
	// IncrementUnansweredFrequency bumps the frequency of an existing question.
	// It reports false when no such question exists.
	IncrementUnansweredFrequency(ctx context.Context, message string, lang model.Language) (bool, error)
	UnansweredStats(ctx context.Context) ([]metrics.UnansweredStat, error)
}

// FeedbackRepository stores ratings of conversations.
type FeedbackRepository interface {
	// GetOrCreateFeedback returns the feedback of (conversation, type), creating it when missing.
	GetOrCreateFeedback(ctx context.Context, opt GetOrCreateFeedbackOptions) (model.Feedback, bool, error)
	UpdateFeedback(ctx context.Context, fb model.Feedback) (model.Feedback, error)
}
