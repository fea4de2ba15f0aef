package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/model"
)

// SubmitFeedback stores one rating per (conversation, type), overwriting an
// earlier one. Negative feedback on a fallback reply raises the priority of the
// matching unanswered question.
func (uc *implUseCase) SubmitFeedback(ctx context.Context, input chat.FeedbackInput) (chat.FeedbackOutput, error) {
	if err := validateFeedback(input); err != nil {
		return chat.FeedbackOutput{}, err
	}

	conv, err := uc.repo.GetConversation(ctx, input.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return chat.FeedbackOutput{}, chat.ErrConversationNotFound
		}
		return chat.FeedbackOutput{}, fmt.Errorf("SubmitFeedback: %w", err)
	}

	fb, created, err := uc.repo.GetOrCreateFeedback(ctx, repository.GetOrCreateFeedbackOptions{
		ConversationID: conv.ID,
		SessionID:      conv.SessionID,
		Type:           input.Type,
		UserAgent:      input.UserAgent,
		IPAddress:      storableIP(input.IPAddress),
	})
	if err != nil {
		return chat.FeedbackOutput{}, fmt.Errorf("SubmitFeedback: %w", err)
	}

	applyFeedback(&fb, input)

	fb, err = uc.repo.UpdateFeedback(ctx, fb)
	if err != nil {
		return chat.FeedbackOutput{}, fmt.Errorf("SubmitFeedback: %w", err)
	}

	if fb.IsNegative() && conv.IsFallback {
		bumped, err := uc.repo.IncrementUnansweredFrequency(ctx, conv.UserMessage, conv.DetectedLanguage)
		if err != nil {
			uc.l.Errorf(ctx, "chat.SubmitFeedback: repo.IncrementUnansweredFrequency: %v", err)
			uc.metrics.SideEffectFailed("unanswered")
		} else if bumped {
			uc.l.Infof(ctx, "chat.SubmitFeedback: raised priority of unanswered question for conversation %s", conv.ID)
		}
	}

	return chat.FeedbackOutput{Feedback: fb, Created: created}, nil
}

func validateFeedback(input chat.FeedbackInput) error {
	if strings.TrimSpace(input.ConversationID) == "" {
		return chat.ErrConversationRequired
	}
	if !input.Type.IsValid() {
		return chat.ErrInvalidFeedbackType
	}
	switch input.Type {
	case model.FeedbackStars:
		if input.StarRating == nil || !validStars(*input.StarRating) {
			return chat.ErrInvalidStarRating
		}
	case model.FeedbackDetailed:
		if input.StarRating != nil && !validStars(*input.StarRating) {
			return chat.ErrInvalidStarRating
		}
	}
	return nil
}

func validStars(n int) bool {
	return n >= chat.MinStarRating && n <= chat.MaxStarRating
}

// applyFeedback copies the fields relevant to the feedback type onto fb.
// Thumbs and helpful ratings default to helpful.
func applyFeedback(fb *model.Feedback, input chat.FeedbackInput) {
	switch input.Type {
	case model.FeedbackThumbs, model.FeedbackHelpful:
		helpful := true
		if input.IsHelpful != nil {
			helpful = *input.IsHelpful
		}
		fb.IsHelpful = &helpful
	case model.FeedbackStars:
		fb.StarRating = input.StarRating
	case model.FeedbackDetailed:
		fb.Text = input.Text
		fb.StarRating = input.StarRating
		fb.IsHelpful = input.IsHelpful
	}
}
