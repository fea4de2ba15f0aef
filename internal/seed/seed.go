// Package seed loads the default support catalogue, triggers and FAQs.
// Every step is an upsert, so running it twice changes nothing.
package seed

import (
	"context"
	"fmt"

	faqRepo "campus-chatbot/internal/faq/repository"
	mhRepo "campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
	pkgLog "campus-chatbot/pkg/log"
)

// Summary counts what was written.
type Summary struct {
	Resources int
	Triggers  int
	Links     int
	FAQs      int
}

type Seeder struct {
	l   pkgLog.Logger
	mh  mhRepo.Repository
	faq faqRepo.Repository
}

func New(l pkgLog.Logger, mh mhRepo.Repository, faq faqRepo.Repository) *Seeder {
	return &Seeder{l: l, mh: mh, faq: faq}
}

// Run upserts resources and triggers, links every trigger to the resources of
// its tier, then upserts the FAQs.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	byUrgency := map[model.UrgencyLevel][]string{}
	for _, opt := range Resources {
		res, err := s.mh.UpsertResource(ctx, opt)
		if err != nil {
			return sum, fmt.Errorf("seed resource %q: %w", opt.Title, err)
		}
		byUrgency[res.UrgencyLevel] = append(byUrgency[res.UrgencyLevel], res.ID)
		sum.Resources++
	}
	s.l.Infof(ctx, "seed: %d resources", sum.Resources)

	for _, opt := range Triggers {
		t, err := s.mh.UpsertTrigger(ctx, opt)
		if err != nil {
			return sum, fmt.Errorf("seed trigger %q: %w", opt.Phrase, err)
		}
		sum.Triggers++

		var ids []string
		for _, u := range linkedUrgencies[opt.ConcernLevel] {
			ids = append(ids, byUrgency[u]...)
		}
		if err := s.mh.SetTriggerResources(ctx, t.ID, ids); err != nil {
			return sum, fmt.Errorf("link trigger %q: %w", opt.Phrase, err)
		}
		sum.Links += len(ids)
	}
	s.l.Infof(ctx, "seed: %d triggers, %d links", sum.Triggers, sum.Links)

	for _, opt := range FAQs {
		if _, err := s.faq.UpsertFAQ(ctx, opt); err != nil {
			return sum, fmt.Errorf("seed faq %q: %w", opt.Question, err)
		}
		sum.FAQs++
	}
	s.l.Infof(ctx, "seed: %d faqs", sum.FAQs)

	return sum, nil
}
