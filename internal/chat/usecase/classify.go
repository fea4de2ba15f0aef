package usecase

import (
	"context"
	"strings"
	"time"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/model"
)

// classify asks the intent classifier, translating in and out of the
// classifier's working language.
func (uc *implUseCase) classify(ctx context.Context, message string, lang model.Language, sessionID string) chat.ChatOutput {
	working := uc.cfg.WorkingLanguage
	query := message
	if lang != working {
		query = uc.translator.Translate(ctx, message, string(working))
	}

	start := time.Now()
	resp, err := uc.classifier.Classify(ctx, sessionID, query)
	if err != nil {
		uc.metrics.ObserveClassifier("unavailable", time.Since(start))
		uc.l.Errorf(ctx, "chat.Process: classifier.Classify: %v", err)
		return uc.connectionErrorReply(ctx, message, lang, sessionID)
	}
	uc.metrics.ObserveClassifier("ok", time.Since(start))

	texts := resp.Texts()
	if len(texts) == 0 {
		return uc.noReply(ctx, message, lang, sessionID)
	}

	reply := strings.Join(texts, "\n\n")
	confidence := resp.Confidence()
	intent := resp.Intent()
	isFallback := isFallbackReply(reply) || (confidence != nil && *confidence < uc.cfg.LowConfidence)

	if lang != working {
		reply = uc.translator.Translate(ctx, reply, string(lang))
	}

	conv := uc.saveConversation(ctx, repository.CreateConversationOptions{
		SessionID:        sessionID,
		UserMessage:      message,
		BotResponse:      reply,
		DetectedLanguage: lang,
		ConfidenceScore:  confidence,
		Intent:           intent,
		IsFallback:       isFallback,
	})

	source := chat.SourceClassifier
	if isFallback {
		source = chat.SourceFallback
		uc.recordUnanswered(ctx, repository.UpsertUnansweredOptions{
			UserMessage:      message,
			DetectedLanguage: lang,
			SessionID:        sessionID,
			ConfidenceScore:  confidence,
			Intent:           intent,
			BotResponse:      reply,
		})
	}

	return chat.ChatOutput{
		Reply:            reply,
		DetectedLanguage: lang,
		ConversationID:   conv.ID,
		ConfidenceScore:  confidence,
		Intent:           intent,
		IsFallback:       isFallback,
		Source:           source,
	}
}

// noReply answers a message the classifier returned no text for.
func (uc *implUseCase) noReply(ctx context.Context, message string, lang model.Language, sessionID string) chat.ChatOutput {
	reply := chat.Localized(chat.NoReplyMessages, lang)
	zero := 0.0

	conv := uc.saveConversation(ctx, repository.CreateConversationOptions{
		SessionID:        sessionID,
		UserMessage:      message,
		BotResponse:      reply,
		DetectedLanguage: lang,
		ConfidenceScore:  &zero,
		Intent:           chat.IntentEmptyResponse,
		IsFallback:       true,
	})
	uc.recordUnanswered(ctx, repository.UpsertUnansweredOptions{
		UserMessage:      message,
		DetectedLanguage: lang,
		SessionID:        sessionID,
		ConfidenceScore:  &zero,
		Intent:           chat.IntentEmptyResponse,
		BotResponse:      reply,
	})

	return chat.ChatOutput{
		Reply:            reply,
		DetectedLanguage: lang,
		ConversationID:   conv.ID,
		ConfidenceScore:  &zero,
		Intent:           chat.IntentEmptyResponse,
		IsFallback:       true,
		Source:           chat.SourceFallback,
	}
}

// connectionErrorReply is logged like any exchange but never counted as unanswered.
func (uc *implUseCase) connectionErrorReply(ctx context.Context, message string, lang model.Language, sessionID string) chat.ChatOutput {
	reply := chat.Localized(chat.ConnectionErrorMessages, lang)
	zero := 0.0

	conv := uc.saveConversation(ctx, repository.CreateConversationOptions{
		SessionID:        sessionID,
		UserMessage:      message,
		BotResponse:      reply,
		DetectedLanguage: lang,
		ConfidenceScore:  &zero,
		Intent:           chat.IntentConnectionError,
		IsFallback:       true,
	})

	return chat.ChatOutput{
		Reply:            reply,
		DetectedLanguage: lang,
		ConversationID:   conv.ID,
		ConfidenceScore:  &zero,
		Intent:           chat.IntentConnectionError,
		IsFallback:       true,
		Source:           chat.SourceConnectionError,
	}
}

func isFallbackReply(reply string) bool {
	lower := strings.ToLower(reply)
	for _, phrase := range chat.FallbackPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
