package usecase

import (
	"context"

	"campus-chatbot/internal/chat/repository"
)

// recordUnanswered is best effort: failures are logged and counted only.
func (uc *implUseCase) recordUnanswered(ctx context.Context, opt repository.UpsertUnansweredOptions) {
	q, err := uc.repo.UpsertUnanswered(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "chat.recordUnanswered: %v", err)
		uc.metrics.SideEffectFailed("unanswered")
		return
	}
	uc.l.Debugf(ctx, "chat.recordUnanswered: id=%s frequency=%d", q.ID, q.FrequencyCount)
}
