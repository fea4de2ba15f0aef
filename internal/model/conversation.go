package model

import "time"

// Conversation is one user message and the reply the bot gave.
type Conversation struct {
	ID               string
	SessionID        string
	UserMessage      string
	BotResponse      string
	DetectedLanguage Language
	ConfidenceScore  *float64
	Intent           string
	IsFallback       bool
	CreatedAt        time.Time
}

// UnansweredQuestion tracks a message the bot could not answer.
// UserMessage and DetectedLanguage together are unique.
type UnansweredQuestion struct {
	ID               string
	UserMessage      string
	DetectedLanguage Language
	SessionID        string
	ConfidenceScore  *float64
	Intent           string
	BotResponse      string
	FrequencyCount   int
	IsProcessed      bool
	FirstAsked       time.Time
	LastAsked        time.Time
}

// FeedbackType is the kind of rating a user left.
type FeedbackType string

const (
	FeedbackThumbs   FeedbackType = "thumbs"
	FeedbackStars    FeedbackType = "stars"
	FeedbackHelpful  FeedbackType = "helpful"
	FeedbackDetailed FeedbackType = "detailed"
)

// IsValid reports whether t is a known feedback type.
func (t FeedbackType) IsValid() bool {
	switch t {
	case FeedbackThumbs, FeedbackStars, FeedbackHelpful, FeedbackDetailed:
		return true
	}
	return false
}

// Feedback is a user's rating of one conversation. ConversationID and Type are unique together.
type Feedback struct {
	ID             string
	ConversationID string
	SessionID      string
	Type           FeedbackType
	IsHelpful      *bool
	StarRating     *int
	Text           string
	UserAgent      string
	IPAddress      string
	CreatedAt      time.Time
}

// IsNegative reports whether the feedback marks the answer as unhelpful.
func (f Feedback) IsNegative() bool {
	if f.IsHelpful != nil && !*f.IsHelpful {
		return true
	}
	return f.StarRating != nil && *f.StarRating <= 2
}
