package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/internal/application"
	"github.com/oksasatya/notes-api/pkg/helpers"
	"github.com/oksasatya/notes-api/pkg/response"
)

// writeError maps service errors to statuses. Anything unclassified is
// logged and reported as a generic 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	var derr *application.DeliveryError
	switch {
	case errors.As(err, &verr):
		response.Fail(c, http.StatusBadRequest, "invalid payload", verr.Fields)
	case errors.Is(err, application.ErrEmailExists),
		errors.Is(err, application.ErrInvalidOrExpiredCode),
		errors.Is(err, application.ErrRegistrationMissing):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrNoteNotFound):
		response.Fail(c, http.StatusNotFound, err.Error(), nil)
	case errors.As(err, &derr):
		response.Fail(c, http.StatusBadGateway, "failed to send otp", nil)
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}
