package classifier

import (
	"errors"
	"time"
)

const (
	DefaultWebhookURL = "http://localhost:5005/webhooks/rest/webhook"
	DefaultTimeout    = 10 * time.Second
)

// ErrUnavailable is returned whenever the service could not produce a reply.
var ErrUnavailable = errors.New("classifier unavailable")
