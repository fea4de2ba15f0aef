package http

import (
	"unicode/utf8"

	"campus-chatbot/internal/chat"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r chatReq) validate() error {
	if r.Message == "" {
		return chat.ErrInvalidInput
	}
	if utf8.RuneCountInString(r.SessionID) > chat.MaxSessionIDLength {
		return chat.ErrSessionIDTooLong
	}
	return nil
}

func (r chatReq) toInput(ip, userAgent string) chat.ChatInput {
	return chat.ChatInput{
		Message:   r.Message,
		SessionID: r.SessionID,
		IPAddress: ip,
		UserAgent: userAgent,
	}
}

// ---

type feedbackReq struct {
	ConversationID string `json:"conversation_id"`
	FeedbackType   string `json:"feedback_type"`
	IsHelpful      *bool  `json:"is_helpful"`
	StarRating     *int   `json:"star_rating"`
	FeedbackText   string `json:"feedback_text"`
}

func (r feedbackReq) validate() error {
	if r.ConversationID == "" {
		return chat.ErrConversationRequired
	}
	return nil
}

func (r feedbackReq) toInput(ip, userAgent string) chat.FeedbackInput {
	return chat.FeedbackInput{
		ConversationID: r.ConversationID,
		Type:           model.FeedbackType(r.FeedbackType),
		IsHelpful:      r.IsHelpful,
		StarRating:     r.StarRating,
		Text:           r.FeedbackText,
		IPAddress:      ip,
		UserAgent:      userAgent,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply            string   `json:"reply"`
	DetectedLanguage string   `json:"detected_language"`
	ConversationID   string   `json:"conversation_id,omitempty"`
	ConcernDetected  bool     `json:"concern_detected"`
	ConcernLevel     string   `json:"concern_level,omitempty"`
	ConfidenceScore  *float64 `json:"confidence_score,omitempty"`
	Intent           string   `json:"intent,omitempty"`
	IsFallback       bool     `json:"is_fallback"`
	Source           string   `json:"source"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	resp := chatResp{
		Reply:            out.Reply,
		DetectedLanguage: string(out.DetectedLanguage),
		ConversationID:   out.ConversationID,
		ConcernDetected:  out.ConcernDetected,
		ConfidenceScore:  out.ConfidenceScore,
		Intent:           out.Intent,
		IsFallback:       out.IsFallback,
		Source:           string(out.Source),
	}
	if out.ConcernDetected {
		resp.ConcernLevel = out.ConcernLevel.String()
	}
	return resp
}

type feedbackResp struct {
	FeedbackID string            `json:"feedback_id"`
	Created    bool              `json:"created"`
	CreatedAt  response.DateTime `json:"created_at"`
	Message    string            `json:"message"`
}

func newFeedbackResp(out chat.FeedbackOutput) feedbackResp {
	return feedbackResp{
		FeedbackID: out.Feedback.ID,
		Created:    out.Created,
		CreatedAt:  response.DateTime(out.Feedback.CreatedAt),
		Message:    "Feedback submitted successfully",
	}
}
