package postgre

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

// ListActiveTriggers returns active triggers for lang ordered by severity, then phrase.
func (r *implRepository) ListActiveTriggers(ctx context.Context, lang model.Language) ([]model.Trigger, error) {
	query := fmt.Sprintf(`
		SELECT t.id, t.trigger_phrase, t.language, t.concern_level, t.is_active, t.created_at,
			ARRAY(
				SELECT tr.resource_id::text FROM mh_trigger_resources tr
				WHERE tr.trigger_id = t.id ORDER BY tr.resource_id
			) AS resource_ids
		FROM mh_triggers t
		WHERE t.language = $1 AND t.is_active = TRUE
		ORDER BY %s DESC, t.trigger_phrase ASC`, concernRankSQL("t.concern_level"))

	rows, err := r.db.QueryContext(ctx, query, string(lang))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveTriggers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var triggers []model.Trigger
	for rows.Next() {
		var (
			t        model.Trigger
			language string
			level    string
		)
		if err := rows.Scan(&t.ID, &t.Phrase, &language, &level, &t.Active, &t.CreatedAt, pq.Array(&t.SuggestedResourceIDs)); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActiveTriggers"), err)
			return nil, repo.ErrFailedToList
		}
		if t.ConcernLevel, err = model.ParseConcernLevel(level); err != nil {
			r.l.Warnf(ctx, "%s: skipping trigger %s: %v", r.dsn("ListActiveTriggers"), t.ID, err)
			continue
		}
		t.Language = model.Language(language)
		triggers = append(triggers, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActiveTriggers"), err)
		return nil, repo.ErrFailedToList
	}
	return triggers, nil
}

// UpsertTrigger inserts a trigger, or updates the level of the existing phrase in that language.
func (r *implRepository) UpsertTrigger(ctx context.Context, opt repo.UpsertTriggerOptions) (model.Trigger, error) {
	const query = `
		INSERT INTO mh_triggers (id, trigger_phrase, language, concern_level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (trigger_phrase, language) DO UPDATE SET concern_level = EXCLUDED.concern_level
		RETURNING id, trigger_phrase, language, concern_level, is_active, created_at`

	var (
		t        model.Trigger
		language string
		level    string
	)
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Phrase, string(opt.Language), opt.ConcernLevel.String()).
		Scan(&t.ID, &t.Phrase, &language, &level, &t.Active, &t.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertTrigger"), err)
		return model.Trigger{}, repo.ErrFailedToInsert
	}
	t.Language = model.Language(language)
	t.ConcernLevel, _ = model.ParseConcernLevel(level)
	return t, nil
}

// SetTriggerResources replaces the suggested resources of a trigger.
func (r *implRepository) SetTriggerResources(ctx context.Context, triggerID string, resourceIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SetTriggerResources"), err)
		return repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM mh_trigger_resources WHERE trigger_id = $1`, triggerID); err != nil {
		r.l.Errorf(ctx, "%s delete: %v", r.dsn("SetTriggerResources"), err)
		return repo.ErrFailedToUpdate
	}

	if len(resourceIDs) > 0 {
		const insert = `
			INSERT INTO mh_trigger_resources (trigger_id, resource_id)
			SELECT $1, unnest($2::uuid[])
			ON CONFLICT DO NOTHING`
		if _, err := tx.ExecContext(ctx, insert, triggerID, pq.Array(resourceIDs)); err != nil {
			r.l.Errorf(ctx, "%s insert: %v", r.dsn("SetTriggerResources"), err)
			return repo.ErrFailedToUpdate
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SetTriggerResources"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
