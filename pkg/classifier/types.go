package classifier

import "time"

// Config configures the Rasa REST client.
type Config struct {
	// WebhookURL is the full REST channel URL, e.g. http://localhost:5005/webhooks/rest/webhook.
	WebhookURL string
	Timeout    time.Duration
}

// Request is the body of a Rasa REST channel call.
type Request struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Message is one reply fragment. Text is nil when the fragment carries none
// (e.g. an image or buttons only).
type Message struct {
	RecipientID string    `json:"recipient_id,omitempty"`
	Text        *string   `json:"text,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

// Metadata is attached to a fragment by custom actions.
type Metadata struct {
	Intent     string   `json:"intent,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Response is the ordered list of fragments returned for one message.
type Response struct {
	Messages []Message
}

// Texts returns the text of every fragment that has one, in order.
func (r Response) Texts() []string {
	var texts []string
	for _, m := range r.Messages {
		if m.Text != nil {
			texts = append(texts, *m.Text)
		}
	}
	return texts
}

// Intent is the intent reported on the first fragment, if any.
func (r Response) Intent() string {
	if len(r.Messages) == 0 || r.Messages[0].Metadata == nil {
		return ""
	}
	return r.Messages[0].Metadata.Intent
}

// Confidence is the confidence reported on the first fragment, or nil.
func (r Response) Confidence() *float64 {
	if len(r.Messages) == 0 || r.Messages[0].Metadata == nil {
		return nil
	}
	return r.Messages[0].Metadata.Confidence
}
