package usecase

import (
	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
	"campus-chatbot/pkg/keyword"
	pkgLog "campus-chatbot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	publisher  repository.AlertPublisher
	matcher    *keyword.Matcher
	keywords   map[model.Language]mentalhealth.KeywordSet
	thresholds mentalhealth.Thresholds
}

// New creates a new mental-health UseCase. publisher may be nil, in which case
// crisis alerts are only stored.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	publisher repository.AlertPublisher,
	matcher *keyword.Matcher,
	cfg mentalhealth.Config,
) *implUseCase {
	if matcher == nil {
		matcher = keyword.NewMatcher(keyword.DefaultCacheSize)
	}
	keywords := cfg.Keywords
	if keywords == nil {
		keywords = mentalhealth.DefaultKeywords
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		publisher:  publisher,
		matcher:    matcher,
		keywords:   keywords,
		thresholds: withDefaults(cfg.Thresholds),
	}
}

func withDefaults(t mentalhealth.Thresholds) mentalhealth.Thresholds {
	d := mentalhealth.DefaultThresholds()
	if t.CrisisConfidence > 0 {
		d.CrisisConfidence = t.CrisisConfidence
	}
	if t.TriggerConfidence > 0 {
		d.TriggerConfidence = t.TriggerConfidence
	}
	if t.HighConfidence > 0 {
		d.HighConfidence = t.HighConfidence
	}
	if t.ModerateConfidence > 0 {
		d.ModerateConfidence = t.ModerateConfidence
	}
	if t.CrisisResourceCap > 0 {
		d.CrisisResourceCap = t.CrisisResourceCap
	}
	if t.ResourceCap > 0 {
		d.ResourceCap = t.ResourceCap
	}
	return d
}
