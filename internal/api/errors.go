package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/logging"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSiteNotFound),
		errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAdminNotConfigured),
		errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrOffline),
		errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidSite),
		errors.Is(err, domain.ErrIncompleteCapture),
		errors.Is(err, domain.ErrNoConfiguration),
		errors.Is(err, domain.ErrSessionIncomplete),
		errors.Is(err, domain.ErrUnknownConfiguration),
		errors.Is(err, domain.ErrUnknownPosition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg} with the mapped status
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Logger.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// badRequest reports a malformed request
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
