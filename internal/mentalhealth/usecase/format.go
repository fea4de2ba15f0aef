package usecase

import (
	"fmt"
	"strings"

	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/model"
)

// Format renders result as a chat reply in lang. When any surfaced resource is
// immediate, only the immediate ones are listed under the crisis preamble.
func (uc *implUseCase) Format(result mentalhealth.ConcernResult, lang model.Language) string {
	t := templatesFor(lang)
	if len(result.Resources) == 0 {
		return t.noResources
	}

	rendered := result.Rendered()
	intro, closing := t.supportIntro, t.supportClosing
	if rendered[0].UrgencyLevel == model.UrgencyImmediate {
		intro, closing = t.crisisIntro, t.crisisClosing
	}

	var b strings.Builder
	b.WriteString(intro)
	for _, r := range rendered {
		writeResource(&b, r, t)
	}
	b.WriteString(closing)
	return b.String()
}

func writeResource(b *strings.Builder, r model.Resource, t replyTemplates) {
	fmt.Fprintf(b, "📞 **%s**\n", r.Title)
	if r.Phone != "" {
		fmt.Fprintf(b, t.phone, r.Phone)
	}
	if r.Available247 {
		b.WriteString(t.available247)
	} else if r.HoursOfOperation != "" {
		fmt.Fprintf(b, t.hours, r.HoursOfOperation)
	}
	if r.Description != "" {
		fmt.Fprintf(b, "   ℹ️ %s\n", r.Description)
	}
	if r.WebsiteURL != "" {
		fmt.Fprintf(b, "   🌐 %s\n", r.WebsiteURL)
	}
	b.WriteString("\n")
}
