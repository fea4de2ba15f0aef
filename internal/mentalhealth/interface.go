package mentalhealth

import (
	"context"

	"campus-chatbot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze classifies message. It never mutates stored data.
	Analyze(ctx context.Context, message string, lang model.Language) (ConcernResult, error)
	// RankForLevel returns the support resources offered for level, capped per tier.
	RankForLevel(ctx context.Context, level model.ConcernLevel, lang model.Language) ([]model.Resource, error)
	// Format renders result as a localized chat reply.
	Format(result ConcernResult, lang model.Language) string
	// RecordInteraction logs the interaction, raising a crisis alert when needed.
	RecordInteraction(ctx context.Context, input RecordInteractionInput) (RecordInteractionOutput, error)
	// MarkResourcesServed increments the usage counter of every resource once.
	MarkResourcesServed(ctx context.Context, resources []model.Resource) error
}
