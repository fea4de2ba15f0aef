package postgre

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

// ListResources returns resources matching opt, most urgent first, then by title.
func (r *implRepository) ListResources(ctx context.Context, opt repo.ListResourcesOptions) ([]model.Resource, error) {
	mods, args := r.buildListResourcesQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM mh_resources %s`, resourceColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListResources"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var resources []model.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListResources"), err)
			return nil, repo.ErrFailedToList
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListResources"), err)
		return nil, repo.ErrFailedToList
	}
	return resources, nil
}

// IncrementResourceUsage bumps usage_count in the database so concurrent requests never lose updates.
func (r *implRepository) IncrementResourceUsage(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	const query = `
		UPDATE mh_resources
		SET usage_count = usage_count + 1, updated_at = NOW()
		WHERE id = ANY($1::uuid[])`

	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementResourceUsage"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpsertResource inserts a resource, or refreshes the existing one with the same title.
func (r *implRepository) UpsertResource(ctx context.Context, opt repo.UpsertResourceOptions) (model.Resource, error) {
	query := fmt.Sprintf(`
		INSERT INTO mh_resources (id, title, description, resource_type, urgency_level, phone, email, website_url,
			address, hours_of_operation, available_247, languages_supported, location_specific)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (title) DO UPDATE SET
			description = EXCLUDED.description,
			resource_type = EXCLUDED.resource_type,
			urgency_level = EXCLUDED.urgency_level,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			website_url = EXCLUDED.website_url,
			address = EXCLUDED.address,
			hours_of_operation = EXCLUDED.hours_of_operation,
			available_247 = EXCLUDED.available_247,
			languages_supported = EXCLUDED.languages_supported,
			location_specific = EXCLUDED.location_specific,
			updated_at = NOW()
		RETURNING %s`, resourceColumns)

	res, err := scanResource(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Title, opt.Description, opt.ResourceType, opt.UrgencyLevel.String(),
		opt.Phone, opt.Email, opt.WebsiteURL, opt.Address, opt.HoursOfOperation, opt.Available247,
		pq.Array(fromLanguages(opt.LanguagesSupported)), opt.LocationSpecific,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertResource"), err)
		return model.Resource{}, repo.ErrFailedToInsert
	}
	return res, nil
}
