package mentalhealth

import "errors"

var (
	ErrNoConversation = errors.New("conversation id is required")
	ErrNoConcern      = errors.New("no concern detected")
)
