package usecase

import (
	"context"

	"campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo serves an in-memory catalogue, applying the same filters as the
// SQL store. Any func field overrides the default behaviour.
type mockRepo struct {
	resources []model.Resource
	triggers  []model.Trigger

	listTriggersFunc   func(lang model.Language) ([]model.Trigger, error)
	listResourcesFunc  func(opt repository.ListResourcesOptions) ([]model.Resource, error)
	incrementFunc      func(ids []string) error
	createInteractFunc func(opt repository.CreateInteractionOptions) (model.Interaction, error)
	createAlertFunc    func(opt repository.CreateCrisisAlertOptions) (model.CrisisAlert, error)

	listResourcesCalls int
	incremented        [][]string
	interactions       []repository.CreateInteractionOptions
	alerts             []repository.CreateCrisisAlertOptions
}

func (m *mockRepo) ListActiveTriggers(ctx context.Context, lang model.Language) ([]model.Trigger, error) {
	if m.listTriggersFunc != nil {
		return m.listTriggersFunc(lang)
	}
	var out []model.Trigger
	for _, t := range m.triggers {
		if t.Active && t.Language == lang {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) UpsertTrigger(ctx context.Context, opt repository.UpsertTriggerOptions) (model.Trigger, error) {
	return model.Trigger{Phrase: opt.Phrase, Language: opt.Language, ConcernLevel: opt.ConcernLevel, Active: true}, nil
}

func (m *mockRepo) SetTriggerResources(ctx context.Context, triggerID string, resourceIDs []string) error {
	return nil
}

func (m *mockRepo) ListResources(ctx context.Context, opt repository.ListResourcesOptions) ([]model.Resource, error) {
	m.listResourcesCalls++
	if m.listResourcesFunc != nil {
		return m.listResourcesFunc(opt)
	}
	var out []model.Resource
	for _, r := range m.resources {
		if opt.ActiveOnly && !r.Active {
			continue
		}
		if opt.Language != "" && !r.Supports(opt.Language) {
			continue
		}
		if len(opt.IDs) > 0 && !containsString(opt.IDs, r.ID) {
			continue
		}
		if len(opt.Urgencies) > 0 && !containsUrgency(opt.Urgencies, r.UrgencyLevel) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) IncrementResourceUsage(ctx context.Context, ids []string) error {
	m.incremented = append(m.incremented, ids)
	if m.incrementFunc != nil {
		return m.incrementFunc(ids)
	}
	return nil
}

func (m *mockRepo) UpsertResource(ctx context.Context, opt repository.UpsertResourceOptions) (model.Resource, error) {
	return model.Resource{Title: opt.Title}, nil
}

func (m *mockRepo) CreateInteraction(ctx context.Context, opt repository.CreateInteractionOptions) (model.Interaction, error) {
	m.interactions = append(m.interactions, opt)
	if m.createInteractFunc != nil {
		return m.createInteractFunc(opt)
	}
	return model.Interaction{
		ID:               "interaction-1",
		ConversationID:   opt.ConversationID,
		SessionID:        opt.SessionID,
		ConcernLevel:     opt.ConcernLevel,
		TriggersFound:    opt.TriggersFound,
		ResourceIDs:      opt.ResourceIDs,
		RequiresFollowUp: opt.RequiresFollowUp,
	}, nil
}

func (m *mockRepo) CreateCrisisAlert(ctx context.Context, opt repository.CreateCrisisAlertOptions) (model.CrisisAlert, error) {
	m.alerts = append(m.alerts, opt)
	if m.createAlertFunc != nil {
		return m.createAlertFunc(opt)
	}
	return model.CrisisAlert{
		ID:            "alert-1",
		InteractionID: opt.InteractionID,
		SessionID:     opt.SessionID,
		Message:       opt.Message,
		Status:        model.AlertStatusNew,
	}, nil
}

type mockPublisher struct {
	err       error
	published []model.CrisisAlert
}

func (m *mockPublisher) PublishCrisisAlert(ctx context.Context, alert model.CrisisAlert) error {
	m.published = append(m.published, alert)
	return m.err
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

var bothLanguages = []model.Language{model.LanguageEnglish, model.LanguageShona}

// catalogue mirrors the seeded resources plus one extra immediate entry so the
// crisis cap is exercised.
func catalogue() []model.Resource {
	return []model.Resource{
		{ID: "r-police", Title: "National Emergency Services", UrgencyLevel: model.UrgencyImmediate, Phone: "999",
			Available247: true, LanguagesSupported: bothLanguages, Active: true},
		{ID: "r-helpline", Title: "Zimbabwe Crisis Helpline", UrgencyLevel: model.UrgencyImmediate, Phone: "+263 4 700 505",
			Available247: true, LanguagesSupported: bothLanguages, Active: true},
		{ID: "r-hospital", Title: "Parirenyatwa Hospital Emergency", UrgencyLevel: model.UrgencyImmediate, Phone: "+263 4 791 631",
			HoursOfOperation: "Emergency department", LanguagesSupported: bothLanguages, Active: true},
		{ID: "r-campus", Title: "Campus Security", UrgencyLevel: model.UrgencyImmediate, Phone: "+263 4 303 211",
			Available247: true, LanguagesSupported: []model.Language{model.LanguageEnglish}, Active: true},
		{ID: "r-inactive", Title: "Old Hotline", UrgencyLevel: model.UrgencyImmediate, Available247: true,
			LanguagesSupported: bothLanguages, Active: false},
		{ID: "r-samaritans", Title: "Samaritans Zimbabwe", UrgencyLevel: model.UrgencyUrgent, Phone: "+263 4 722 000",
			Available247: true, LanguagesSupported: bothLanguages, Active: true, UsageCount: 7},
		{ID: "r-textline", Title: "Crisis Text Line", UrgencyLevel: model.UrgencyUrgent,
			Available247: true, LanguagesSupported: []model.Language{model.LanguageEnglish}, Active: true, UsageCount: 2},
		{ID: "r-counseling", Title: "University Counseling Center", UrgencyLevel: model.UrgencyGeneral,
			HoursOfOperation: "Mon-Fri 8:00-17:00", LanguagesSupported: bothLanguages, Active: true},
		{ID: "r-bench", Title: "Friendship Bench", UrgencyLevel: model.UrgencyGeneral,
			WebsiteURL: "https://www.friendshipbenchzimbabwe.org", LanguagesSupported: bothLanguages, Active: true, UsageCount: 3},
		{ID: "r-headspace", Title: "Headspace", UrgencyLevel: model.UrgencyPreventive,
			LanguagesSupported: []model.Language{model.LanguageEnglish}, Active: true},
	}
}
