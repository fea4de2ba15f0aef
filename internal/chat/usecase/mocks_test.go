package usecase

import (
	"context"
	"fmt"

	"campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/metrics"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/classifier"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type unansweredKey struct {
	message string
	lang    model.Language
}

// mockRepo keeps conversations, unanswered questions and feedback in memory.
type mockRepo struct {
	conversations []model.Conversation
	unanswered    map[unansweredKey]*model.UnansweredQuestion
	feedback      map[string]*model.Feedback

	createConvErr error
	upsertErr     error
	getConvErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		unanswered: map[unansweredKey]*model.UnansweredQuestion{},
		feedback:   map[string]*model.Feedback{},
	}
}

func (m *mockRepo) CreateConversation(ctx context.Context, opt repository.CreateConversationOptions) (model.Conversation, error) {
	if m.createConvErr != nil {
		return model.Conversation{}, m.createConvErr
	}
	conv := model.Conversation{
		ID:               fmt.Sprintf("conv-%d", len(m.conversations)+1),
		SessionID:        opt.SessionID,
		UserMessage:      opt.UserMessage,
		BotResponse:      opt.BotResponse,
		DetectedLanguage: opt.DetectedLanguage,
		ConfidenceScore:  opt.ConfidenceScore,
		Intent:           opt.Intent,
		IsFallback:       opt.IsFallback,
	}
	m.conversations = append(m.conversations, conv)
	return conv, nil
}

func (m *mockRepo) GetConversation(ctx context.Context, id string) (model.Conversation, error) {
	if m.getConvErr != nil {
		return model.Conversation{}, m.getConvErr
	}
	for _, c := range m.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Conversation{}, repository.ErrNotFound
}

func (m *mockRepo) UpsertUnanswered(ctx context.Context, opt repository.UpsertUnansweredOptions) (model.UnansweredQuestion, error) {
	if m.upsertErr != nil {
		return model.UnansweredQuestion{}, m.upsertErr
	}
	key := unansweredKey{opt.UserMessage, opt.DetectedLanguage}
	q, ok := m.unanswered[key]
	if !ok {
		q = &model.UnansweredQuestion{
			ID:               fmt.Sprintf("uq-%d", len(m.unanswered)+1),
			UserMessage:      opt.UserMessage,
			DetectedLanguage: opt.DetectedLanguage,
			SessionID:        opt.SessionID,
		}
		m.unanswered[key] = q
	}
	q.FrequencyCount++
	q.ConfidenceScore = opt.ConfidenceScore
	q.Intent = opt.Intent
	q.BotResponse = opt.BotResponse
	return *q, nil
}

func (m *mockRepo) IncrementUnansweredFrequency(ctx context.Context, message string, lang model.Language) (bool, error) {
	q, ok := m.unanswered[unansweredKey{message, lang}]
	if !ok {
		return false, nil
	}
	q.FrequencyCount++
	return true, nil
}

func (m *mockRepo) UnansweredStats(ctx context.Context) ([]metrics.UnansweredStat, error) {
	return nil, nil
}

func (m *mockRepo) GetOrCreateFeedback(ctx context.Context, opt repository.GetOrCreateFeedbackOptions) (model.Feedback, bool, error) {
	key := opt.ConversationID + "/" + string(opt.Type)
	if fb, ok := m.feedback[key]; ok {
		return *fb, false, nil
	}
	fb := &model.Feedback{
		ID:             fmt.Sprintf("fb-%d", len(m.feedback)+1),
		ConversationID: opt.ConversationID,
		SessionID:      opt.SessionID,
		Type:           opt.Type,
		UserAgent:      opt.UserAgent,
		IPAddress:      opt.IPAddress,
	}
	m.feedback[key] = fb
	return *fb, true, nil
}

func (m *mockRepo) UpdateFeedback(ctx context.Context, fb model.Feedback) (model.Feedback, error) {
	key := fb.ConversationID + "/" + string(fb.Type)
	stored := fb
	m.feedback[key] = &stored
	return fb, nil
}

func (m *mockRepo) frequency(message string, lang model.Language) int {
	if q, ok := m.unanswered[unansweredKey{message, lang}]; ok {
		return q.FrequencyCount
	}
	return 0
}

type mockMH struct {
	result    mentalhealth.ConcernResult
	err       error
	alert     bool
	recorded  []mentalhealth.RecordInteractionInput
	served    [][]model.Resource
	recordErr error
}

func (m *mockMH) Analyze(ctx context.Context, message string, lang model.Language) (mentalhealth.ConcernResult, error) {
	return m.result, m.err
}

func (m *mockMH) RankForLevel(ctx context.Context, level model.ConcernLevel, lang model.Language) ([]model.Resource, error) {
	return nil, nil
}

func (m *mockMH) Format(result mentalhealth.ConcernResult, lang model.Language) string {
	return fmt.Sprintf("support(%s,%s)", result.Level, lang)
}

func (m *mockMH) RecordInteraction(ctx context.Context, input mentalhealth.RecordInteractionInput) (mentalhealth.RecordInteractionOutput, error) {
	m.recorded = append(m.recorded, input)
	out := mentalhealth.RecordInteractionOutput{}
	if m.alert {
		out.Alert = &model.CrisisAlert{ID: "alert-1"}
	}
	return out, m.recordErr
}

func (m *mockMH) MarkResourcesServed(ctx context.Context, resources []model.Resource) error {
	m.served = append(m.served, resources)
	return nil
}

type mockFAQ struct {
	answers map[string]string
}

func (m *mockFAQ) Resolve(ctx context.Context, message string, lang model.Language) (string, bool) {
	a, ok := m.answers[message]
	return a, ok
}

type mockClassifier struct {
	resp  classifier.Response
	err   error
	calls []string
}

func (m *mockClassifier) Classify(ctx context.Context, sessionID, message string) (classifier.Response, error) {
	m.calls = append(m.calls, message)
	return m.resp, m.err
}

// mockTranslator detects a fixed language and tags translated text.
type mockTranslator struct {
	lang string
}

func (m *mockTranslator) DetectLanguage(ctx context.Context, text string) string {
	return m.lang
}

func (m *mockTranslator) Translate(ctx context.Context, text, target string) string {
	return "[" + target + "]" + text
}

func textReply(text string, intent string, confidence *float64) classifier.Response {
	return classifier.Response{Messages: []classifier.Message{{
		Text:     &text,
		Metadata: &classifier.Metadata{Intent: intent, Confidence: confidence},
	}}}
}

func ptr[T any](v T) *T {
	return &v
}
