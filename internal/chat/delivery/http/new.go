package http

import (
	"github.com/gin-gonic/gin"

	"campus-chatbot/internal/chat"
	"campus-chatbot/pkg/log"
)

// Handler is the HTTP delivery for the chat domain.
type Handler interface {
	Chat(c *gin.Context)
	SubmitFeedback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
