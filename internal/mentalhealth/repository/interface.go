package repository

import (
	"context"

	"campus-chatbot/internal/model"
)

// Repository is the composed interface for the mental-health data store.
type Repository interface {
	TriggerRepository
	ResourceRepository
	InteractionRepository
}

// TriggerRepository defines data access for stored trigger phrases.
type TriggerRepository interface {
	// ListActiveTriggers returns active triggers for lang, most severe first, then by phrase.
	ListActiveTriggers(ctx context.Context, lang model.Language) ([]model.Trigger, error)
	UpsertTrigger(ctx context.Context, opt UpsertTriggerOptions) (model.Trigger, error)
	SetTriggerResources(ctx context.Context, triggerID string, resourceIDs []string) error
}

// ResourceRepository defines data access for support resources.
type ResourceRepository interface {
	ListResources(ctx context.Context, opt ListResourcesOptions) ([]model.Resource, error)
	// IncrementResourceUsage adds one to usage_count of each id in a single statement.
	IncrementResourceUsage(ctx context.Context, ids []string) error
	UpsertResource(ctx context.Context, opt UpsertResourceOptions) (model.Resource, error)
}

// InteractionRepository stores interactions and crisis alerts.
type InteractionRepository interface {
	CreateInteraction(ctx context.Context, opt CreateInteractionOptions) (model.Interaction, error)
	CreateCrisisAlert(ctx context.Context, opt CreateCrisisAlertOptions) (model.CrisisAlert, error)
}

// AlertPublisher pushes crisis alerts to responders outside the database.
type AlertPublisher interface {
	PublishCrisisAlert(ctx context.Context, alert model.CrisisAlert) error
}
