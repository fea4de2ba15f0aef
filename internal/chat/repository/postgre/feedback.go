package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	repo "campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/model"
)

const feedbackColumns = `id, conversation_id, session_id, feedback_type, is_helpful, star_rating,
	feedback_text, user_agent, COALESCE(host(ip_address), ''), created_at`

func scanFeedback(row rowScanner) (model.Feedback, error) {
	var (
		fb      model.Feedback
		fbType  string
		helpful sql.NullBool
		stars   sql.NullInt32
	)
	if err := row.Scan(&fb.ID, &fb.ConversationID, &fb.SessionID, &fbType, &helpful, &stars,
		&fb.Text, &fb.UserAgent, &fb.IPAddress, &fb.CreatedAt); err != nil {
		return model.Feedback{}, err
	}
	fb.Type = model.FeedbackType(fbType)
	if helpful.Valid {
		v := helpful.Bool
		fb.IsHelpful = &v
	}
	if stars.Valid {
		v := int(stars.Int32)
		fb.StarRating = &v
	}
	return fb, nil
}

// GetOrCreateFeedback inserts a blank feedback row unless one exists for (conversation, type).
func (r *implRepository) GetOrCreateFeedback(ctx context.Context, opt repo.GetOrCreateFeedbackOptions) (model.Feedback, bool, error) {
	const insert = `
		INSERT INTO chat_feedback (id, conversation_id, session_id, feedback_type, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::inet)
		ON CONFLICT (conversation_id, feedback_type) DO NOTHING
		RETURNING ` + feedbackColumns

	fb, err := scanFeedback(r.db.QueryRowContext(ctx, insert,
		uuid.NewString(), opt.ConversationID, opt.SessionID, string(opt.Type), opt.UserAgent, opt.IPAddress))
	if err == nil {
		return fb, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("GetOrCreateFeedback"), err)
		return model.Feedback{}, false, repo.ErrFailedToInsert
	}

	const query = `SELECT ` + feedbackColumns + ` FROM chat_feedback WHERE conversation_id = $1 AND feedback_type = $2`
	fb, err = scanFeedback(r.db.QueryRowContext(ctx, query, opt.ConversationID, string(opt.Type)))
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("GetOrCreateFeedback"), err)
		return model.Feedback{}, false, repo.ErrFailedToGet
	}
	return fb, false, nil
}

// UpdateFeedback overwrites the rating fields of fb.
func (r *implRepository) UpdateFeedback(ctx context.Context, fb model.Feedback) (model.Feedback, error) {
	const query = `
		UPDATE chat_feedback
		SET is_helpful = $2, star_rating = $3, feedback_text = $4
		WHERE id = $1
		RETURNING ` + feedbackColumns

	var (
		helpful sql.NullBool
		stars   sql.NullInt32
	)
	if fb.IsHelpful != nil {
		helpful = sql.NullBool{Bool: *fb.IsHelpful, Valid: true}
	}
	if fb.StarRating != nil {
		stars = sql.NullInt32{Int32: int32(*fb.StarRating), Valid: true}
	}

	updated, err := scanFeedback(r.db.QueryRowContext(ctx, query, fb.ID, helpful, stars, fb.Text))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Feedback{}, repo.ErrNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateFeedback"), err)
		return model.Feedback{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}
