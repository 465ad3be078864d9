package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/domain"
	"odyssweb/internal/errmsg"
	"odyssweb/internal/http/middleware"
	"odyssweb/internal/utils"
)

// RespondServiceError turns a service failure into a user-facing response.
// The raw error is logged with the request id; the body only carries the
// errmsg string. Expired sessions point the caller at /login.
func RespondServiceError(c *gin.Context, errContext string, err error) {
	reqID := middleware.GetRequestID(c)
	utils.LogEvent(reqID, "http", "error", errContext+": "+err.Error())

	message := errmsg.UserFriendly(err, errContext)

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		c.Header("Location", "/login")
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":    message,
			"redirect":   "/login",
			"request_id": reqID,
		})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    message,
			"request_id": reqID,
		})
	default:
		status := http.StatusInternalServerError
		if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Status >= 400 {
			status = apiErr.Status
		}
		c.JSON(status, gin.H{
			"message":    message,
			"request_id": reqID,
		})
	}
}

// RespondAuthError is RespondServiceError with the credential-flow message
// preference (backend detail wins over canned text).
func RespondAuthError(c *gin.Context, err error) {
	reqID := middleware.GetRequestID(c)
	utils.LogEvent(reqID, "http", "auth_error", err.Error())

	status := http.StatusUnauthorized
	if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Status >= 400 {
		status = apiErr.Status
	} else if domain.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"message":    errmsg.AuthFriendly(err),
		"request_id": reqID,
	})
}
