package postgre

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

// CreateInteraction logs a conversation in which a concern was detected.
func (r *implRepository) CreateInteraction(ctx context.Context, opt repo.CreateInteractionOptions) (model.Interaction, error) {
	const query = `
		INSERT INTO mh_interactions (id, conversation_id, session_id, concern_level, triggers_found,
			resource_ids, requires_follow_up, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6::uuid[], $7, NULLIF($8, '')::inet)
		RETURNING created_at`

	it := model.Interaction{
		ID:               uuid.NewString(),
		ConversationID:   opt.ConversationID,
		SessionID:        opt.SessionID,
		ConcernLevel:     opt.ConcernLevel,
		TriggersFound:    opt.TriggersFound,
		ResourceIDs:      opt.ResourceIDs,
		RequiresFollowUp: opt.RequiresFollowUp,
		IPAddress:        opt.IPAddress,
	}

	err := r.db.QueryRowContext(ctx, query,
		it.ID, opt.ConversationID, opt.SessionID, opt.ConcernLevel.String(), pq.Array(opt.TriggersFound),
		pq.Array(opt.ResourceIDs), opt.RequiresFollowUp, opt.IPAddress,
	).Scan(&it.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInteraction"), err)
		return model.Interaction{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// CreateCrisisAlert raises a new alert for the interaction.
func (r *implRepository) CreateCrisisAlert(ctx context.Context, opt repo.CreateCrisisAlertOptions) (model.CrisisAlert, error) {
	const query = `
		INSERT INTO mh_crisis_alerts (id, interaction_id, alert_message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	alert := model.CrisisAlert{
		ID:            uuid.NewString(),
		InteractionID: opt.InteractionID,
		SessionID:     opt.SessionID,
		Message:       opt.Message,
		Status:        model.AlertStatusNew,
	}
	err := r.db.QueryRowContext(ctx, query, alert.ID, opt.InteractionID, opt.Message, string(alert.Status)).
		Scan(&alert.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCrisisAlert"), err)
		return model.CrisisAlert{}, repo.ErrFailedToInsert
	}
	return alert, nil
}
