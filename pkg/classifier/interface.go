package classifier

import "context"

// Classifier sends a user message to the intent-classification service.
type Classifier interface {
	// Classify returns the service's reply fragments in receipt order.
	// Any transport failure, timeout, non-2xx status or undecodable body
	// is reported as an error wrapping ErrUnavailable.
	Classify(ctx context.Context, sessionID, message string) (Response, error)
}
