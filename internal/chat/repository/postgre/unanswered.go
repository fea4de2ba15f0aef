package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	repo "campus-chatbot/internal/chat/repository"
	"campus-chatbot/internal/metrics"
	"campus-chatbot/internal/model"
)

const unansweredColumns = `id, user_message, detected_language, session_id, confidence_score, intent,
	bot_response, frequency_count, is_processed, first_asked, last_asked`

func scanUnanswered(row rowScanner) (model.UnansweredQuestion, error) {
	var (
		q          model.UnansweredQuestion
		lang       string
		confidence sql.NullFloat64
	)
	if err := row.Scan(&q.ID, &q.UserMessage, &lang, &q.SessionID, &confidence, &q.Intent,
		&q.BotResponse, &q.FrequencyCount, &q.IsProcessed, &q.FirstAsked, &q.LastAsked); err != nil {
		return model.UnansweredQuestion{}, err
	}
	q.DetectedLanguage = model.Language(lang)
	q.ConfidenceScore = floatPtr(confidence)
	return q, nil
}

// UpsertUnanswered inserts the question or bumps its frequency in one statement.
func (r *implRepository) UpsertUnanswered(ctx context.Context, opt repo.UpsertUnansweredOptions) (model.UnansweredQuestion, error) {
	const query = `
		INSERT INTO unanswered_questions (id, user_message, detected_language, session_id,
			confidence_score, intent, bot_response)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_message, detected_language) DO UPDATE SET
			frequency_count = unanswered_questions.frequency_count + 1,
			confidence_score = EXCLUDED.confidence_score,
			intent = EXCLUDED.intent,
			bot_response = EXCLUDED.bot_response,
			last_asked = NOW()
		RETURNING ` + unansweredColumns

	q, err := scanUnanswered(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserMessage, string(opt.DetectedLanguage), opt.SessionID,
		nullFloat(opt.ConfidenceScore), opt.Intent, opt.BotResponse,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUnanswered"), err)
		return model.UnansweredQuestion{}, repo.ErrFailedToInsert
	}
	return q, nil
}

// IncrementUnansweredFrequency bumps the frequency of an existing question.
func (r *implRepository) IncrementUnansweredFrequency(ctx context.Context, message string, lang model.Language) (bool, error) {
	const query = `
		UPDATE unanswered_questions
		SET frequency_count = frequency_count + 1, last_asked = NOW()
		WHERE user_message = $1 AND detected_language = $2`

	res, err := r.db.ExecContext(ctx, query, message, string(lang))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementUnansweredFrequency"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("IncrementUnansweredFrequency"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

// UnansweredStats totals unprocessed questions per language.
func (r *implRepository) UnansweredStats(ctx context.Context) ([]metrics.UnansweredStat, error) {
	const query = `
		SELECT detected_language, COUNT(*), COALESCE(SUM(frequency_count), 0)
		FROM unanswered_questions
		WHERE is_processed = FALSE
		GROUP BY detected_language
		ORDER BY detected_language`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UnansweredStats"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var stats []metrics.UnansweredStat
	for rows.Next() {
		var s metrics.UnansweredStat
		if err := rows.Scan(&s.Language, &s.Questions, &s.Asks); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("UnansweredStats"), err)
			return nil, repo.ErrFailedToList
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return stats, nil
}
