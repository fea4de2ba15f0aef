package repository

import "campus-chatbot/internal/model"

// ListResourcesOptions filters resources. Empty fields are not applied.
type ListResourcesOptions struct {
	IDs        []string
	Urgencies  []model.UrgencyLevel
	Language   model.Language
	ActiveOnly bool
	Limit      int
}

// UpsertResourceOptions inserts a resource or updates the one with the same title.
type UpsertResourceOptions struct {
	Title              string
	Description        string
	ResourceType       string
	UrgencyLevel       model.UrgencyLevel
	Phone              string
	Email              string
	WebsiteURL         string
	Address            string
	HoursOfOperation   string
	Available247       bool
	LanguagesSupported []model.Language
	LocationSpecific   string
}

// UpsertTriggerOptions inserts a trigger or updates the one with the same phrase and language.
type UpsertTriggerOptions struct {
	Phrase       string
	Language     model.Language
	ConcernLevel model.ConcernLevel
}

// CreateInteractionOptions holds parameters for logging an interaction.
type CreateInteractionOptions struct {
	ConversationID   string
	SessionID        string
	ConcernLevel     model.ConcernLevel
	TriggersFound    []string
	ResourceIDs      []string
	RequiresFollowUp bool
	IPAddress        string
}

// CreateCrisisAlertOptions holds parameters for raising a crisis alert.
type CreateCrisisAlertOptions struct {
	InteractionID string
	SessionID     string
	Message       string
}
