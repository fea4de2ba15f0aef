package usecase

import (
	"context"
	"net"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/model"
)

// Process routes the message through concern detection, the FAQ and finally
// the intent classifier. The first stage that answers ends the chain.
func (uc *implUseCase) Process(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ChatOutput{}, chat.ErrInvalidInput
	}

	if utf8.RuneCountInString(strings.TrimSpace(input.SessionID)) > chat.MaxSessionIDLength {
		return chat.ChatOutput{}, chat.ErrSessionIDTooLong
	}
	input.IPAddress = storableIP(input.IPAddress)

	sessionID := sessionIDFor(input)
	lang := model.ParseLanguage(uc.translator.DetectLanguage(ctx, message))
	uc.l.Infof(ctx, "chat.Process: session=%s language=%s length=%d", sessionID, lang, len(message))

	var out chat.ChatOutput
	if result, ok := uc.detectConcern(ctx, message, lang); ok {
		out = uc.concernReply(ctx, message, lang, sessionID, input.IPAddress, result)
	} else if answer, ok := uc.faq.Resolve(ctx, message, lang); ok {
		out = uc.faqReply(ctx, message, lang, sessionID, answer)
	} else {
		out = uc.classify(ctx, message, lang, sessionID)
	}

	uc.metrics.ObserveTriage(string(out.Source), out.ConcernLevel.String(), string(lang))
	return out, nil
}

// sessionIDFor falls back to an anonymous id derived from the client address.
func sessionIDFor(input chat.ChatInput) string {
	if sid := strings.TrimSpace(input.SessionID); sid != "" {
		return sid
	}
	if input.IPAddress != "" {
		return chat.AnonymousSessionPrefix + input.IPAddress
	}
	return chat.AnonymousSessionPrefix + uuid.NewString()
}

// storableIP drops anything the inet column would reject.
func storableIP(ip string) string {
	ip = strings.TrimSpace(ip)
	if net.ParseIP(ip) == nil {
		return ""
	}
	return ip
}

func (uc *implUseCase) detectConcern(ctx context.Context, message string, lang model.Language) (mentalhealth.ConcernResult, bool) {
	result, err := uc.mh.Analyze(ctx, message, lang)
	if err != nil {
		uc.l.Errorf(ctx, "chat.Process: mh.Analyze: %v", err)
		return mentalhealth.ConcernResult{}, false
	}
	return result, result.Detected()
}

func (uc *implUseCase) concernReply(ctx context.Context, message string, lang model.Language, sessionID, ip string, result mentalhealth.ConcernResult) chat.ChatOutput {
	uc.l.Infof(ctx, "chat.Process: concern level=%s triggers=%v", result.Level, result.TriggersFound)

	reply := uc.mh.Format(result, lang)
	confidence := result.Confidence

	conv := uc.saveConversation(ctx, repository.CreateConversationOptions{
		SessionID:        sessionID,
		UserMessage:      message,
		BotResponse:      reply,
		DetectedLanguage: lang,
		ConfidenceScore:  &confidence,
		Intent:           chat.IntentMentalHealth,
	})

	if conv.ID != "" {
		recorded, err := uc.mh.RecordInteraction(ctx, mentalhealth.RecordInteractionInput{
			ConversationID: conv.ID,
			SessionID:      sessionID,
			IPAddress:      ip,
			Result:         result,
		})
		if err != nil {
			uc.l.Errorf(ctx, "chat.Process: mh.RecordInteraction: %v", err)
			uc.metrics.SideEffectFailed("interaction")
		}
		if recorded.Alert != nil {
			uc.metrics.CrisisAlertRaised()
		}
	}

	if err := uc.mh.MarkResourcesServed(ctx, result.Rendered()); err != nil {
		uc.l.Errorf(ctx, "chat.Process: mh.MarkResourcesServed: %v", err)
		uc.metrics.SideEffectFailed("resource_usage")
	}

	return chat.ChatOutput{
		Reply:            reply,
		DetectedLanguage: lang,
		ConversationID:   conv.ID,
		ConcernDetected:  true,
		ConcernLevel:     result.Level,
		ConfidenceScore:  &confidence,
		Intent:           chat.IntentMentalHealth,
		Source:           chat.SourceMentalHealth,
	}
}

func (uc *implUseCase) faqReply(ctx context.Context, message string, lang model.Language, sessionID, answer string) chat.ChatOutput {
	confidence := uc.cfg.FAQConfidence
	conv := uc.saveConversation(ctx, repository.CreateConversationOptions{
		SessionID:        sessionID,
		UserMessage:      message,
		BotResponse:      answer,
		DetectedLanguage: lang,
		ConfidenceScore:  &confidence,
		Intent:           chat.IntentFAQ,
	})

	return chat.ChatOutput{
		Reply:            answer,
		DetectedLanguage: lang,
		ConversationID:   conv.ID,
		ConfidenceScore:  &confidence,
		Intent:           chat.IntentFAQ,
		Source:           chat.SourceFAQ,
	}
}

// saveConversation logs the exchange. On failure the reply is still sent,
// without a conversation id.
func (uc *implUseCase) saveConversation(ctx context.Context, opt repository.CreateConversationOptions) model.Conversation {
	conv, err := uc.repo.CreateConversation(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "chat.Process: repo.CreateConversation: %v", err)
		uc.metrics.SideEffectFailed("conversation")
		return model.Conversation{}
	}
	return conv
}
