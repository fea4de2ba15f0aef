package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-chatbot/internal/mentalhealth"
	"campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

// RecordInteraction stores the interaction. A crisis also raises an alert,
// which is then pushed to the alert stream when a publisher is configured.
func (uc *implUseCase) RecordInteraction(ctx context.Context, input mentalhealth.RecordInteractionInput) (mentalhealth.RecordInteractionOutput, error) {
	if input.ConversationID == "" {
		return mentalhealth.RecordInteractionOutput{}, mentalhealth.ErrNoConversation
	}
	if !input.Result.Detected() {
		return mentalhealth.RecordInteractionOutput{}, mentalhealth.ErrNoConcern
	}

	level := input.Result.Level
	interaction, err := uc.repo.CreateInteraction(ctx, repository.CreateInteractionOptions{
		ConversationID:   input.ConversationID,
		SessionID:        input.SessionID,
		ConcernLevel:     level,
		TriggersFound:    input.Result.TriggersFound,
		ResourceIDs:      input.Result.ResourceIDs(),
		RequiresFollowUp: level.RequiresFollowUp(),
		IPAddress:        input.IPAddress,
	})
	if err != nil {
		return mentalhealth.RecordInteractionOutput{}, fmt.Errorf("RecordInteraction: %w", err)
	}

	out := mentalhealth.RecordInteractionOutput{Interaction: interaction}
	if level != model.ConcernCrisis {
		return out, nil
	}

	alert, err := uc.repo.CreateCrisisAlert(ctx, repository.CreateCrisisAlertOptions{
		InteractionID: interaction.ID,
		SessionID:     input.SessionID,
		Message:       fmt.Sprintf(mentalhealth.AlertMessageTemplate, input.SessionID, strings.Join(input.Result.TriggersFound, ", ")),
	})
	if err != nil {
		return out, fmt.Errorf("RecordInteraction: crisis alert: %w", err)
	}
	out.Alert = &alert
	uc.l.Warnf(ctx, "mentalhealth.RecordInteraction: crisis alert %s raised for session %s", alert.ID, input.SessionID)

	if uc.publisher != nil {
		if err := uc.publisher.PublishCrisisAlert(ctx, alert); err != nil {
			uc.l.Errorf(ctx, "mentalhealth.RecordInteraction: publish alert %s: %v", alert.ID, err)
		}
	}
	return out, nil
}

// MarkResourcesServed counts one use of every distinct resource.
func (uc *implUseCase) MarkResourcesServed(ctx context.Context, resources []model.Resource) error {
	seen := make(map[string]struct{}, len(resources))
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		if r.ID == "" {
			continue
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		ids = append(ids, r.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := uc.repo.IncrementResourceUsage(ctx, ids); err != nil {
		return fmt.Errorf("MarkResourcesServed: %w", err)
	}
	return nil
}
