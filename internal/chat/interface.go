package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Process answers one user message. Only ErrInvalidInput is returned to
	// the caller; every other failure degrades to an apologetic reply.
	Process(ctx context.Context, input ChatInput) (ChatOutput, error)
	// SubmitFeedback records a rating of an earlier reply.
	SubmitFeedback(ctx context.Context, input FeedbackInput) (FeedbackOutput, error)
}
