package chat

import "errors"

var (
	ErrInvalidInput         = errors.New("message must not be empty")
	ErrSessionIDTooLong     = errors.New("session id must be at most 100 characters")
	ErrConversationRequired = errors.New("conversation id is required")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidFeedbackType  = errors.New("invalid feedback type")
	ErrInvalidStarRating    = errors.New("star rating must be between 1 and 5")
)
