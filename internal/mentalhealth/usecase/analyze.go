package usecase

import (
	"context"
	"strings"

	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

// Analyze runs the detection chain. The first step that matches decides the result:
// crisis keywords, stored triggers, high keywords, moderate keywords.
// Lookup failures degrade the result's resources but never the detected level.
func (uc *implUseCase) Analyze(ctx context.Context, message string, lang model.Language) (mentalhealth.ConcernResult, error) {
	if err := ctx.Err(); err != nil {
		return mentalhealth.ConcernResult{}, err
	}
	if strings.TrimSpace(message) == "" {
		return noConcern(), nil
	}

	kw := uc.keywords[lang]

	if found := uc.matcher.Match(message, kw.Crisis); len(found) > 0 {
		return uc.keywordResult(ctx, model.ConcernCrisis, found, uc.thresholds.CrisisConfidence, lang), nil
	}

	trigger, ok, err := uc.findFirstMatchingTrigger(ctx, message, lang)
	if err != nil {
		uc.l.Warnf(ctx, "mentalhealth.Analyze: trigger lookup failed, continuing with keyword lists: %v", err)
	}
	if ok {
		return uc.triggerResult(ctx, trigger, lang), nil
	}

	if found := uc.matcher.Match(message, kw.High); len(found) > 0 {
		return uc.keywordResult(ctx, model.ConcernHigh, found, uc.thresholds.HighConfidence, lang), nil
	}

	if found := uc.matcher.Match(message, kw.Moderate); len(found) > 0 {
		return uc.keywordResult(ctx, model.ConcernModerate, found, uc.thresholds.ModerateConfidence, lang), nil
	}

	return noConcern(), nil
}

func noConcern() mentalhealth.ConcernResult {
	return mentalhealth.ConcernResult{
		Level:         model.ConcernNone,
		TriggersFound: []string{},
		Resources:     []model.Resource{},
	}
}

func (uc *implUseCase) keywordResult(ctx context.Context, level model.ConcernLevel, found []string, confidence float64, lang model.Language) mentalhealth.ConcernResult {
	resources, err := uc.RankForLevel(ctx, level, lang)
	if err != nil {
		uc.l.Errorf(ctx, "mentalhealth.Analyze: rank resources for %s: %v", level, err)
		resources = []model.Resource{}
	}
	return mentalhealth.ConcernResult{
		Level:         level,
		TriggersFound: found,
		Confidence:    confidence,
		Resources:     resources,
	}
}

// triggerResult serves the trigger's own suggested resources. A crisis trigger
// only ever surfaces immediate resources, falling back to the crisis ranking.
func (uc *implUseCase) triggerResult(ctx context.Context, t model.Trigger, lang model.Language) mentalhealth.ConcernResult {
	result := mentalhealth.ConcernResult{
		Level:         t.ConcernLevel,
		TriggersFound: []string{t.Phrase},
		Confidence:    uc.thresholds.TriggerConfidence,
		Resources:     []model.Resource{},
	}

	if len(t.SuggestedResourceIDs) > 0 {
		resources, err := uc.repo.ListResources(ctx, repository.ListResourcesOptions{
			IDs:        t.SuggestedResourceIDs,
			ActiveOnly: true,
		})
		if err != nil {
			uc.l.Errorf(ctx, "mentalhealth.Analyze: load resources of trigger %s: %v", t.ID, err)
		} else {
			result.Resources = resources
		}
	}

	if t.ConcernLevel == model.ConcernCrisis {
		result.Resources = filterUrgency(result.Resources, model.UrgencyImmediate)
		if len(result.Resources) == 0 {
			ranked, err := uc.RankForLevel(ctx, model.ConcernCrisis, lang)
			if err != nil {
				uc.l.Errorf(ctx, "mentalhealth.Analyze: rank crisis resources: %v", err)
			} else {
				result.Resources = ranked
			}
		}
	}

	result.Resources = capResources(result.Resources, uc.capFor(t.ConcernLevel))
	return result
}

func filterUrgency(resources []model.Resource, urgency model.UrgencyLevel) []model.Resource {
	out := make([]model.Resource, 0, len(resources))
	for _, r := range resources {
		if r.UrgencyLevel == urgency {
			out = append(out, r)
		}
	}
	return out
}
