package postgre

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "campus-chatbot/internal/faq/repository"
	"campus-chatbot/internal/model"
)

const faqColumns = `id, question, answer, language, category, keywords, is_active, usage_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFAQ(row rowScanner) (model.FAQ, error) {
	var (
		f    model.FAQ
		lang string
	)
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &lang, &f.Category, pq.Array(&f.Keywords),
		&f.Active, &f.UsageCount, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return model.FAQ{}, err
	}
	f.Language = model.Language(lang)
	return f, nil
}

// ListActiveFAQs returns active FAQs of lang ordered by usage_count desc, then creation.
func (r *implRepository) ListActiveFAQs(ctx context.Context, lang model.Language) ([]model.FAQ, error) {
	const query = `
		SELECT ` + faqColumns + `
		FROM faqs
		WHERE language = $1 AND is_active = TRUE
		ORDER BY usage_count DESC, created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, string(lang))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveFAQs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActiveFAQs"), err)
			return nil, repo.ErrFailedToList
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActiveFAQs"), err)
		return nil, repo.ErrFailedToList
	}
	return faqs, nil
}

// IncrementFAQUsage bumps usage_count in the database.
func (r *implRepository) IncrementFAQUsage(ctx context.Context, id string) error {
	const query = `UPDATE faqs SET usage_count = usage_count + 1, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementFAQUsage"), err)
		return repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// UpsertFAQ inserts an FAQ, or refreshes the one with the same question in that language.
func (r *implRepository) UpsertFAQ(ctx context.Context, opt repo.UpsertFAQOptions) (model.FAQ, error) {
	const query = `
		INSERT INTO faqs (id, question, answer, language, category, keywords)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (question, language) DO UPDATE SET
			answer = EXCLUDED.answer,
			category = EXCLUDED.category,
			keywords = EXCLUDED.keywords,
			updated_at = NOW()
		RETURNING ` + faqColumns

	keywords := opt.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	f, err := scanFAQ(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Question, opt.Answer, string(opt.Language), opt.Category, pq.Array(keywords)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertFAQ"), err)
		return model.FAQ{}, repo.ErrFailedToInsert
	}
	return f, nil
}
