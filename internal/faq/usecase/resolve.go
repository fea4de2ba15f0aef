package usecase

import (
	"context"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"campus-chatbot/internal/model"
)

// Resolve matches message against the active FAQs of lang, first by question
// similarity and then by keyword. The first FAQ to match is served and its
// usage counted.
func (uc *implUseCase) Resolve(ctx context.Context, message string, lang model.Language) (string, bool) {
	if strings.TrimSpace(message) == "" {
		return "", false
	}

	faqs, err := uc.repo.ListActiveFAQs(ctx, lang)
	if err != nil {
		uc.l.Errorf(ctx, "faq.Resolve: list faqs: %v", err)
		return "", false
	}

	lowered := strings.ToLower(message)

	msgRunes := splitRunes(lowered)
	for _, f := range faqs {
		if !servable(f, lang) {
			continue
		}
		if similarity(msgRunes, splitRunes(strings.ToLower(f.Question))) > uc.threshold {
			uc.l.Debugf(ctx, "faq.Resolve: similarity match faq=%s", f.ID)
			return uc.serve(ctx, f), true
		}
	}

	words := strings.Fields(lowered)
	for _, f := range faqs {
		if !servable(f, lang) || len(f.Keywords) == 0 {
			continue
		}
		if anyKeywordIn(f.Keywords, words) {
			uc.l.Debugf(ctx, "faq.Resolve: keyword match faq=%s", f.ID)
			return uc.serve(ctx, f), true
		}
	}

	return "", false
}

// serve counts the use. A failed increment still answers.
func (uc *implUseCase) serve(ctx context.Context, f model.FAQ) string {
	if err := uc.repo.IncrementFAQUsage(ctx, f.ID); err != nil {
		uc.l.Errorf(ctx, "faq.Resolve: increment usage of %s: %v", f.ID, err)
	}
	return f.Answer
}

func servable(f model.FAQ, lang model.Language) bool {
	return f.Active && f.Language == lang
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// similarity is the SequenceMatcher ratio 2*M/T of the two rune sequences.
func similarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	return difflib.NewMatcher(a, b).Ratio()
}

func anyKeywordIn(keywords, words []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, w := range words {
			if w == kw {
				return true
			}
		}
	}
	return false
}
