package http

import (
	"github.com/gin-gonic/gin"

	"campus-chatbot/internal/middleware"
	"campus-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs the message through concern detection, the FAQ and the intent classifier and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput(middleware.ClientIP(c), c.Request.UserAgent()))
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(output))
}

// SubmitFeedback godoc
// @Summary     Rate a reply
// @Description Stores feedback for a conversation. Submitting the same type again overwrites the earlier rating.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback"
// @Success     200  {object} feedbackResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Conversation not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/feedback [POST]
func (h *handler) SubmitFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.SubmitFeedback(ctx, req.toInput(middleware.ClientIP(c), c.Request.UserAgent()))
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitFeedback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newFeedbackResp(output))
}
