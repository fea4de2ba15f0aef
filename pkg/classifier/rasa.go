package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type rasaClient struct {
	http *resty.Client
	url  string
}

// New creates a Classifier speaking the Rasa REST channel protocol.
// Calls are never retried.
func New(cfg Config) Classifier {
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = DefaultWebhookURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &rasaClient{http: client, url: cfg.WebhookURL}
}

func (c *rasaClient) Classify(ctx context.Context, sessionID, message string) (Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(Request{Sender: sessionID, Message: message}).
		Post(c.url)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return Response{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	var messages []Message
	if body := resp.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &messages); err != nil {
			return Response{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
	}
	return Response{Messages: messages}, nil
}
