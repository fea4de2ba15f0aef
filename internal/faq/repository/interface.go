package repository

import (
	"context"

	"campus-chatbot/internal/model"
)

// Repository defines data access for FAQ entries.
type Repository interface {
	// ListActiveFAQs returns active FAQs of lang, most used first.
	ListActiveFAQs(ctx context.Context, lang model.Language) ([]model.FAQ, error)
	// IncrementFAQUsage adds one to the usage counter in a single statement.
	IncrementFAQUsage(ctx context.Context, id string) error
	UpsertFAQ(ctx context.Context, opt UpsertFAQOptions) (model.FAQ, error)
}
