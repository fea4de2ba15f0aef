package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"campus-chatbot/internal/model"
	repo "campus-chatbot/internal/mentalhealth/repository"
)

const resourceColumns = `id, title, description, resource_type, urgency_level, phone, email, website_url,
	address, hours_of_operation, available_247, languages_supported, location_specific,
	usage_count, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (model.Resource, error) {
	var (
		res       model.Resource
		urgency   string
		languages []string
	)
	err := row.Scan(
		&res.ID, &res.Title, &res.Description, &res.ResourceType, &urgency, &res.Phone, &res.Email, &res.WebsiteURL,
		&res.Address, &res.HoursOfOperation, &res.Available247, pq.Array(&languages), &res.LocationSpecific,
		&res.UsageCount, &res.Active, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return model.Resource{}, err
	}
	if res.UrgencyLevel, err = model.ParseUrgencyLevel(urgency); err != nil {
		return model.Resource{}, err
	}
	res.LanguagesSupported = toLanguages(languages)
	return res, nil
}

func toLanguages(codes []string) []model.Language {
	langs := make([]model.Language, 0, len(codes))
	for _, c := range codes {
		langs = append(langs, model.Language(strings.TrimSpace(c)))
	}
	return langs
}

func fromLanguages(langs []model.Language) []string {
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, string(l))
	}
	return codes
}

// concernRankSQL orders stored concern names by model.ConcernLevel instead of by text.
func concernRankSQL(column string) string {
	levels := []model.ConcernLevel{model.ConcernCrisis, model.ConcernHigh, model.ConcernModerate, model.ConcernLow}
	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s", column)
	for _, lvl := range levels {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", lvl.String(), int(lvl))
	}
	fmt.Fprintf(&b, " ELSE %d END", int(model.ConcernNone))
	return b.String()
}

// urgencyRankSQL orders stored urgency names by model.UrgencyLevel.
func urgencyRankSQL(column string) string {
	levels := []model.UrgencyLevel{model.UrgencyImmediate, model.UrgencyUrgent, model.UrgencyGeneral, model.UrgencyPreventive}
	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s", column)
	for _, lvl := range levels {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", lvl.String(), int(lvl))
	}
	fmt.Fprintf(&b, " ELSE %d END", len(levels))
	return b.String()
}

// buildListResourcesQuery builds the WHERE + ORDER + LIMIT clause for ListResources.
func (r *implRepository) buildListResourcesQuery(opt repo.ListResourcesOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if len(opt.IDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("id = ANY($%d::uuid[])", idx))
		args = append(args, pq.Array(opt.IDs))
		idx++
	}
	if len(opt.Urgencies) > 0 {
		names := make([]string, 0, len(opt.Urgencies))
		for _, u := range opt.Urgencies {
			names = append(names, u.String())
		}
		conditions = append(conditions, fmt.Sprintf("urgency_level = ANY($%d)", idx))
		args = append(args, pq.Array(names))
		idx++
	}
	if opt.Language != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(languages_supported)", idx))
		args = append(args, string(opt.Language))
		idx++
	}
	if opt.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, fmt.Sprintf("ORDER BY %s, title ASC", urgencyRankSQL("urgency_level")))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
