package http

import (
	"github.com/gin-gonic/gin"

	"campus-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Both are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Chat)
	rg.POST("/feedback", mw.RateLimit(), h.SubmitFeedback)
}
