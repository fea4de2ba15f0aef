package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

// DefaultStream is the stream crisis alerts are appended to when none is configured.
const DefaultStream = "crisis-alerts"

type alertPublisher struct {
	client *goredis.Client
	stream string
	maxLen int64
}

// NewAlertPublisher returns an AlertPublisher that appends alerts to a Redis stream.
// maxLen <= 0 leaves the stream untrimmed.
func NewAlertPublisher(client *goredis.Client, stream string, maxLen int64) repository.AlertPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &alertPublisher{client: client, stream: stream, maxLen: maxLen}
}

func (p *alertPublisher) PublishCrisisAlert(ctx context.Context, alert model.CrisisAlert) error {
	args := &goredis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"alert_id":       alert.ID,
			"interaction_id": alert.InteractionID,
			"session_id":     alert.SessionID,
			"status":         string(alert.Status),
			"message":        alert.Message,
			"created_at":     alert.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publish crisis alert %s: %w", alert.ID, err)
	}
	return nil
}
