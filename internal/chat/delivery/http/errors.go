package http

import (
	"errors"
	"net/http"

	"campus-chatbot/internal/chat"
	pkgErrors "campus-chatbot/pkg/errors"
)

var errBadBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON body")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a 500.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, chat.ErrInvalidInput),
		errors.Is(err, chat.ErrSessionIDTooLong),
		errors.Is(err, chat.ErrConversationRequired),
		errors.Is(err, chat.ErrInvalidFeedbackType),
		errors.Is(err, chat.ErrInvalidStarRating):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrConversationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
