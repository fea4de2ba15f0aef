package faq

import (
	"context"

	"campus-chatbot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve returns the answer of the best matching active FAQ in lang.
	// Lookup failures are reported as no match.
	Resolve(ctx context.Context, message string, lang model.Language) (string, bool)
}
