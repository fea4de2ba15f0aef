package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/middleware"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/log"
)

type mockUseCase struct {
	processFunc  func(input chat.ChatInput) (chat.ChatOutput, error)
	feedbackFunc func(input chat.FeedbackInput) (chat.FeedbackOutput, error)
	lastChat     chat.ChatInput
	lastFeedback chat.FeedbackInput
}

func (m *mockUseCase) Process(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	m.lastChat = input
	return m.processFunc(input)
}

func (m *mockUseCase) SubmitFeedback(ctx context.Context, input chat.FeedbackInput) (chat.FeedbackOutput, error) {
	m.lastFeedback = input
	return m.feedbackFunc(input)
}

func setupRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// httptest requests come from 192.0.2.1
	_ = r.SetTrustedProxies([]string{"192.0.2.0/24"})
	RegisterRoutes(r.Group("/api/v1/chat"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func post(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return postFrom(t, r, path, body, "203.0.113.9")
}

func postFrom(t *testing.T, r *gin.Engine, path, body, forwardedFor string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestChat(t *testing.T) {
	confidence := 0.95
	uc := &mockUseCase{processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
		return chat.ChatOutput{
			Reply:            "help is here",
			DetectedLanguage: model.LanguageEnglish,
			ConversationID:   "c-1",
			ConcernDetected:  true,
			ConcernLevel:     model.ConcernCrisis,
			ConfidenceScore:  &confidence,
			Intent:           chat.IntentMentalHealth,
			Source:           chat.SourceMentalHealth,
		}, nil
	}}
	r := setupRouter(uc)

	w, env := post(t, r, "/api/v1/chat", `{"message":"  I want to kill myself ","session_id":"s-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data chatResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "help is here", data.Reply)
	assert.Equal(t, "crisis", data.ConcernLevel)
	assert.True(t, data.ConcernDetected)
	assert.Equal(t, "mental_health", data.Source)

	assert.Equal(t, "I want to kill myself", uc.lastChat.Message)
	assert.Equal(t, "s-1", uc.lastChat.SessionID)
	assert.Equal(t, "203.0.113.9", uc.lastChat.IPAddress)
}

func TestChat_NoConcernOmitsLevel(t *testing.T) {
	uc := &mockUseCase{processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
		return chat.ChatOutput{Reply: "hi", DetectedLanguage: model.LanguageEnglish, Source: chat.SourceClassifier}, nil
	}}

	w, env := post(t, setupRouter(uc), "/api/v1/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "concern_level")
}

func TestChat_BadRequests(t *testing.T) {
	uc := &mockUseCase{processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
		t.Fatal("use case must not be called")
		return chat.ChatOutput{}, nil
	}}
	r := setupRouter(uc)

	for name, body := range map[string]string{
		"empty message": `{"message":"   "}`,
		"missing":       `{}`,
		"invalid json":  `{"message":`,
	} {
		t.Run(name, func(t *testing.T) {
			w, _ := post(t, r, "/api/v1/chat", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestChat_SessionIDTooLong(t *testing.T) {
	uc := &mockUseCase{processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
		t.Fatal("use case must not be called")
		return chat.ChatOutput{}, nil
	}}
	r := setupRouter(uc)

	body := `{"message":"hello","session_id":"` + strings.Repeat("s", chat.MaxSessionIDLength+1) + `"}`
	w, _ := post(t, r, "/api/v1/chat", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_SessionIDAtLimit(t *testing.T) {
	uc := &mockUseCase{processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
		return chat.ChatOutput{Reply: "hi", Source: chat.SourceClassifier}, nil
	}}

	sid := strings.Repeat("ü", chat.MaxSessionIDLength)
	w, _ := post(t, setupRouter(uc), "/api/v1/chat", `{"message":"hello","session_id":"`+sid+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sid, uc.lastChat.SessionID)
}

func TestChat_NonIPForwardedFor(t *testing.T) {
	uc := &mockUseCase{
		processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
			return chat.ChatOutput{Reply: "hi", Source: chat.SourceClassifier}, nil
		},
		feedbackFunc: func(input chat.FeedbackInput) (chat.FeedbackOutput, error) {
			return chat.FeedbackOutput{Feedback: model.Feedback{ID: "fb-1"}}, nil
		},
	}
	r := setupRouter(uc)

	w, _ := postFrom(t, r, "/api/v1/chat", `{"message":"hello"}`, "unknown")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "192.0.2.1", uc.lastChat.IPAddress)

	w, _ = postFrom(t, r, "/api/v1/chat/feedback", `{"conversation_id":"c-1","feedback_type":"thumbs"}`, "unknown")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "192.0.2.1", uc.lastFeedback.IPAddress)
}

func TestChat_UnknownErrorIs500(t *testing.T) {
	uc := &mockUseCase{processFunc: func(input chat.ChatInput) (chat.ChatOutput, error) {
		return chat.ChatOutput{}, errors.New("boom")
	}}

	w, env := post(t, setupRouter(uc), "/api/v1/chat", `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, env.Message, "boom")
}

func TestSubmitFeedback(t *testing.T) {
	uc := &mockUseCase{feedbackFunc: func(input chat.FeedbackInput) (chat.FeedbackOutput, error) {
		return chat.FeedbackOutput{
			Feedback: model.Feedback{ID: "fb-1", CreatedAt: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)},
			Created:  true,
		}, nil
	}}

	w, env := post(t, setupRouter(uc), "/api/v1/chat/feedback",
		`{"conversation_id":"c-1","feedback_type":"stars","star_rating":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		FeedbackID string `json:"feedback_id"`
		CreatedAt  string `json:"created_at"`
		Message    string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "fb-1", data.FeedbackID)
	assert.Equal(t, "Feedback submitted successfully", data.Message)
	assert.Equal(t, "2024-05-01 15:30:00", data.CreatedAt)

	assert.Equal(t, model.FeedbackStars, uc.lastFeedback.Type)
	require.NotNil(t, uc.lastFeedback.StarRating)
	assert.Equal(t, 2, *uc.lastFeedback.StarRating)
	assert.Equal(t, "203.0.113.9", uc.lastFeedback.IPAddress)
}

func TestSubmitFeedback_Errors(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want int
	}{
		"not found":    {chat.ErrConversationNotFound, http.StatusNotFound},
		"bad stars":    {chat.ErrInvalidStarRating, http.StatusBadRequest},
		"bad type":     {chat.ErrInvalidFeedbackType, http.StatusBadRequest},
		"wrapped":      {errors.Join(errors.New("ctx"), chat.ErrInvalidStarRating), http.StatusBadRequest},
		"unrecognised": {errors.New("db down"), http.StatusInternalServerError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{feedbackFunc: func(input chat.FeedbackInput) (chat.FeedbackOutput, error) {
				return chat.FeedbackOutput{}, tc.err
			}}
			w, _ := post(t, setupRouter(uc), "/api/v1/chat/feedback", `{"conversation_id":"c-1","feedback_type":"thumbs"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestSubmitFeedback_MissingConversation(t *testing.T) {
	uc := &mockUseCase{}
	w, _ := post(t, setupRouter(uc), "/api/v1/chat/feedback", `{"feedback_type":"thumbs"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
