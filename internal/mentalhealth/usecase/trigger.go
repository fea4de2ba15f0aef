package usecase

import (
	"context"
	"sort"

	"campus-chatbot/internal/model"
)

// findFirstMatchingTrigger returns the most severe active trigger of lang whose
// phrase occurs in text as a whole word. Equal severities resolve by phrase.
func (uc *implUseCase) findFirstMatchingTrigger(ctx context.Context, text string, lang model.Language) (model.Trigger, bool, error) {
	triggers, err := uc.repo.ListActiveTriggers(ctx, lang)
	if err != nil {
		return model.Trigger{}, false, err
	}

	sort.SliceStable(triggers, func(i, j int) bool {
		if triggers[i].ConcernLevel != triggers[j].ConcernLevel {
			return triggers[i].ConcernLevel.MoreSevereThan(triggers[j].ConcernLevel)
		}
		return triggers[i].Phrase < triggers[j].Phrase
	})

	for _, t := range triggers {
		if !t.Active || t.Language != lang || t.ConcernLevel == model.ConcernNone {
			continue
		}
		if uc.matcher.Contains(text, t.Phrase) {
			return t, true, nil
		}
	}
	return model.Trigger{}, false, nil
}
