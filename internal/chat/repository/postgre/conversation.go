package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	repo "campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/model"
)

const conversationColumns = `id, session_id, user_message, bot_response, detected_language,
	confidence_score, intent, is_fallback, created_at`

func scanConversation(row rowScanner) (model.Conversation, error) {
	var (
		c          model.Conversation
		lang       string
		confidence sql.NullFloat64
	)
	if err := row.Scan(&c.ID, &c.SessionID, &c.UserMessage, &c.BotResponse, &lang,
		&confidence, &c.Intent, &c.IsFallback, &c.CreatedAt); err != nil {
		return model.Conversation{}, err
	}
	c.DetectedLanguage = model.Language(lang)
	c.ConfidenceScore = floatPtr(confidence)
	return c, nil
}

// CreateConversation logs one exchange.
func (r *implRepository) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (model.Conversation, error) {
	const query = `
		INSERT INTO conversations (id, session_id, user_message, bot_response, detected_language,
			confidence_score, intent, is_fallback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + conversationColumns

	c, err := scanConversation(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.SessionID, opt.UserMessage, opt.BotResponse, string(opt.DetectedLanguage),
		nullFloat(opt.ConfidenceScore), opt.Intent, opt.IsFallback,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetConversation returns the conversation with id, or ErrNotFound.
func (r *implRepository) GetConversation(ctx context.Context, id string) (model.Conversation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Conversation{}, repo.ErrNotFound
	}

	const query = `SELECT ` + conversationColumns + ` FROM conversations WHERE id = $1`

	c, err := scanConversation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Conversation{}, repo.ErrNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetConversation"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return c, nil
}
