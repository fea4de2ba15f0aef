package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/classifier"
)

type fixture struct {
	repo *mockRepo
	mh   *mockMH
	faq  *mockFAQ
	cls  *mockClassifier
	tr   *mockTranslator
}

func newFixture() *fixture {
	return &fixture{
		repo: newMockRepo(),
		mh:   &mockMH{},
		faq:  &mockFAQ{answers: map[string]string{}},
		cls:  &mockClassifier{},
		tr:   &mockTranslator{lang: "en"},
	}
}

func (f *fixture) uc() *implUseCase {
	return New(&mockLogger{}, f.repo, f.mh, f.faq, f.cls, f.tr, nil, chat.Config{})
}

func TestProcess_EmptyMessage(t *testing.T) {
	f := newFixture()
	_, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrInvalidInput)
	assert.Empty(t, f.repo.conversations)
}

func TestProcess_Concern(t *testing.T) {
	f := newFixture()
	f.mh.result = mentalhealth.ConcernResult{
		Level:         model.ConcernCrisis,
		TriggersFound: []string{"kill myself"},
		Confidence:    0.95,
		Resources:     []model.Resource{{ID: "r-1"}},
	}
	f.mh.alert = true
	f.faq.answers["I want to kill myself"] = "should not be used"

	out, err := f.uc().Process(context.Background(), chat.ChatInput{
		Message:   "I want to kill myself",
		SessionID: "s-1",
		IPAddress: "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, chat.SourceMentalHealth, out.Source)
	assert.True(t, out.ConcernDetected)
	assert.Equal(t, model.ConcernCrisis, out.ConcernLevel)
	assert.Equal(t, chat.IntentMentalHealth, out.Intent)
	assert.Equal(t, "support(crisis,en)", out.Reply)
	require.NotNil(t, out.ConfidenceScore)
	assert.InDelta(t, 0.95, *out.ConfidenceScore, 1e-9)
	assert.Equal(t, "conv-1", out.ConversationID)
	assert.Empty(t, f.cls.calls)

	require.Len(t, f.mh.recorded, 1)
	assert.Equal(t, "conv-1", f.mh.recorded[0].ConversationID)
	assert.Equal(t, "s-1", f.mh.recorded[0].SessionID)
	assert.Equal(t, "10.0.0.1", f.mh.recorded[0].IPAddress)
	require.Len(t, f.mh.served, 1)
}

func TestProcess_ConcernWithoutConversation(t *testing.T) {
	f := newFixture()
	f.repo.createConvErr = errors.New("db down")
	f.mh.result = mentalhealth.ConcernResult{Level: model.ConcernModerate, Confidence: 0.7}

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "so stressed", SessionID: "s"})
	require.NoError(t, err)
	assert.Equal(t, chat.SourceMentalHealth, out.Source)
	assert.Empty(t, out.ConversationID)
	assert.Empty(t, f.mh.recorded)
	assert.Len(t, f.mh.served, 1)
}

func TestProcess_ConcernCountsOnlyRenderedResources(t *testing.T) {
	f := newFixture()
	f.mh.result = mentalhealth.ConcernResult{
		Level:      model.ConcernHigh,
		Confidence: 0.7,
		Resources: []model.Resource{
			{ID: "hotline", UrgencyLevel: model.UrgencyImmediate},
			{ID: "counselling", UrgencyLevel: model.UrgencyUrgent},
		},
	}

	_, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "I feel hopeless", SessionID: "s"})
	require.NoError(t, err)
	require.Len(t, f.mh.served, 1)
	require.Len(t, f.mh.served[0], 1)
	assert.Equal(t, "hotline", f.mh.served[0][0].ID)
}

func TestProcess_AnalyzeErrorFallsThrough(t *testing.T) {
	f := newFixture()
	f.mh.err = context.Canceled
	f.faq.answers["library hours"] = "8am to 10pm"

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "library hours", SessionID: "s"})
	require.NoError(t, err)
	assert.Equal(t, chat.SourceFAQ, out.Source)
}

func TestProcess_FAQ(t *testing.T) {
	f := newFixture()
	f.faq.answers["library hours"] = "8am to 10pm"

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "  library hours ", SessionID: "s"})
	require.NoError(t, err)

	assert.Equal(t, chat.SourceFAQ, out.Source)
	assert.Equal(t, "8am to 10pm", out.Reply)
	assert.Equal(t, chat.IntentFAQ, out.Intent)
	require.NotNil(t, out.ConfidenceScore)
	assert.InDelta(t, 0.95, *out.ConfidenceScore, 1e-9)
	assert.False(t, out.IsFallback)
	assert.Empty(t, f.cls.calls)
	require.Len(t, f.repo.conversations, 1)
	assert.Equal(t, "library hours", f.repo.conversations[0].UserMessage)
}

func TestProcess_Classifier(t *testing.T) {
	f := newFixture()
	f.cls.resp = classifier.Response{Messages: []classifier.Message{
		{Text: ptr("Registration opens Monday."), Metadata: &classifier.Metadata{Intent: "registration", Confidence: ptr(0.88)}},
		{Text: ptr("Bring your student card.")},
	}}

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "when is registration", SessionID: "s"})
	require.NoError(t, err)

	assert.Equal(t, chat.SourceClassifier, out.Source)
	assert.Equal(t, "Registration opens Monday.\n\nBring your student card.", out.Reply)
	assert.Equal(t, "registration", out.Intent)
	assert.False(t, out.IsFallback)
	assert.Empty(t, f.repo.unanswered)
	assert.Equal(t, []string{"when is registration"}, f.cls.calls)
}

func TestProcess_ClassifierTranslatesShona(t *testing.T) {
	f := newFixture()
	f.tr.lang = "sn"
	f.cls.resp = textReply("Registration opens Monday.", "registration", ptr(0.9))

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "registration inovhurwa riini", SessionID: "s"})
	require.NoError(t, err)

	assert.Equal(t, []string{"[en]registration inovhurwa riini"}, f.cls.calls)
	assert.Equal(t, "[sn]Registration opens Monday.", out.Reply)
	assert.Equal(t, model.LanguageShona, out.DetectedLanguage)
}

func TestProcess_EmptyClassifierReply(t *testing.T) {
	f := newFixture()
	f.cls.resp = classifier.Response{}

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "asdfgh", SessionID: "s"})
	require.NoError(t, err)

	assert.Equal(t, "Sorry, I did not understand.", out.Reply)
	assert.Equal(t, chat.SourceFallback, out.Source)
	assert.Equal(t, chat.IntentEmptyResponse, out.Intent)
	assert.True(t, out.IsFallback)
	require.NotNil(t, out.ConfidenceScore)
	assert.Zero(t, *out.ConfidenceScore)
	assert.Equal(t, 1, f.repo.frequency("asdfgh", model.LanguageEnglish))
}

func TestProcess_ClassifierUnavailable(t *testing.T) {
	f := newFixture()
	f.cls.err = classifier.ErrUnavailable

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "hello there", SessionID: "s"})
	require.NoError(t, err)

	assert.Equal(t, chat.SourceConnectionError, out.Source)
	assert.Equal(t, chat.IntentConnectionError, out.Intent)
	assert.Equal(t, chat.ConnectionErrorMessages[model.LanguageEnglish], out.Reply)
	assert.True(t, out.IsFallback)
	assert.Empty(t, f.repo.unanswered)
	require.Len(t, f.repo.conversations, 1)
}

func TestProcess_LowConfidenceCountsRepeats(t *testing.T) {
	f := newFixture()
	f.cls.resp = textReply("Maybe try the registry.", "nlu_fallback", ptr(0.3))
	uc := f.uc()

	for i := 0; i < 2; i++ {
		out, err := uc.Process(context.Background(), chat.ChatInput{Message: "where do I get a transcript", SessionID: "s"})
		require.NoError(t, err)
		assert.True(t, out.IsFallback)
		assert.Equal(t, chat.SourceFallback, out.Source)
	}
	assert.Equal(t, 2, f.repo.frequency("where do I get a transcript", model.LanguageEnglish))
}

func TestProcess_FallbackPhrase(t *testing.T) {
	f := newFixture()
	f.cls.resp = textReply("I'm not sure I understand. Could you please rephrase?", "", nil)

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "blorp", SessionID: "s"})
	require.NoError(t, err)
	assert.True(t, out.IsFallback)
	assert.Nil(t, out.ConfidenceScore)
	assert.Equal(t, 1, f.repo.frequency("blorp", model.LanguageEnglish))
}

func TestProcess_MissingConfidenceIsNotLow(t *testing.T) {
	f := newFixture()
	f.cls.resp = textReply("Hello!", "greet", nil)

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "hi", SessionID: "s"})
	require.NoError(t, err)
	assert.False(t, out.IsFallback)
}

func TestProcess_UnansweredFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.repo.upsertErr = errors.New("db down")
	f.cls.resp = classifier.Response{}

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "x", SessionID: "s"})
	require.NoError(t, err)
	assert.True(t, out.IsFallback)
}

func TestSessionIDFor(t *testing.T) {
	assert.Equal(t, "abc", sessionIDFor(chat.ChatInput{SessionID: " abc "}))
	assert.Equal(t, "anon_10.1.2.3", sessionIDFor(chat.ChatInput{IPAddress: "10.1.2.3"}))

	generated := sessionIDFor(chat.ChatInput{})
	assert.Regexp(t, `^anon_[0-9a-f-]{36}$`, generated)
}

func TestProcess_SessionIDTooLong(t *testing.T) {
	f := newFixture()
	_, err := f.uc().Process(context.Background(), chat.ChatInput{
		Message:   "hello",
		SessionID: strings.Repeat("x", chat.MaxSessionIDLength+1),
	})
	assert.ErrorIs(t, err, chat.ErrSessionIDTooLong)
	assert.Empty(t, f.repo.conversations)
	assert.Empty(t, f.cls.calls)
}

func TestProcess_InvalidIPIsNotStored(t *testing.T) {
	f := newFixture()
	f.mh.result = mentalhealth.ConcernResult{Level: model.ConcernCrisis, Confidence: 0.9}
	f.mh.alert = true

	out, err := f.uc().Process(context.Background(), chat.ChatInput{Message: "I want to end my life", IPAddress: "unknown"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ConversationID)

	require.Len(t, f.mh.recorded, 1)
	assert.Empty(t, f.mh.recorded[0].IPAddress)
	assert.Regexp(t, `^anon_[0-9a-f-]{36}$`, f.mh.recorded[0].SessionID)
}

func TestStorableIP(t *testing.T) {
	assert.Equal(t, "10.1.2.3", storableIP(" 10.1.2.3 "))
	assert.Equal(t, "2001:db8::1", storableIP("2001:db8::1"))
	assert.Empty(t, storableIP("unknown"))
	assert.Empty(t, storableIP(""))
}
