package usecase

import (
	"context"
	"fmt"
	"sort"

	"campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

var tierUrgencies = map[model.ConcernLevel][]model.UrgencyLevel{
	model.ConcernCrisis:   {model.UrgencyImmediate},
	model.ConcernHigh:     {model.UrgencyImmediate, model.UrgencyUrgent},
	model.ConcernModerate: {model.UrgencyGeneral, model.UrgencyUrgent},
}

// RankForLevel returns the active resources in lang that suit level.
// Crisis resources are ordered 24/7 first then by title; the other tiers by
// urgency then least used.
func (uc *implUseCase) RankForLevel(ctx context.Context, level model.ConcernLevel, lang model.Language) ([]model.Resource, error) {
	urgencies, ok := tierUrgencies[level]
	if !ok {
		return []model.Resource{}, nil
	}

	candidates, err := uc.repo.ListResources(ctx, repository.ListResourcesOptions{
		Urgencies:  urgencies,
		Language:   lang,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("RankForLevel %s: %w", level, err)
	}

	resources := make([]model.Resource, 0, len(candidates))
	for _, r := range candidates {
		if r.Active && r.Supports(lang) && containsUrgency(urgencies, r.UrgencyLevel) {
			resources = append(resources, r)
		}
	}

	if level == model.ConcernCrisis {
		sort.SliceStable(resources, func(i, j int) bool {
			if resources[i].Available247 != resources[j].Available247 {
				return resources[i].Available247
			}
			return resources[i].Title < resources[j].Title
		})
	} else {
		sort.SliceStable(resources, func(i, j int) bool {
			a, b := resources[i], resources[j]
			if a.UrgencyLevel != b.UrgencyLevel {
				return a.UrgencyLevel < b.UrgencyLevel
			}
			if a.UsageCount != b.UsageCount {
				return a.UsageCount < b.UsageCount
			}
			return a.Title < b.Title
		})
	}

	return capResources(resources, uc.capFor(level)), nil
}

func (uc *implUseCase) capFor(level model.ConcernLevel) int {
	if level == model.ConcernCrisis {
		return uc.thresholds.CrisisResourceCap
	}
	return uc.thresholds.ResourceCap
}

func capResources(resources []model.Resource, limit int) []model.Resource {
	if limit > 0 && len(resources) > limit {
		return resources[:limit]
	}
	return resources
}

func containsUrgency(set []model.UrgencyLevel, u model.UrgencyLevel) bool {
	for _, s := range set {
		if s == u {
			return true
		}
	}
	return false
}
