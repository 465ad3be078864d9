package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListNotifications(c *gin.Context) {
	items, err := h.notifications(c).List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "default", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	if err := h.notifications(c).MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		RespondServiceError(c, "default", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notifications(c).MarkAllRead(c.Request.Context()); err != nil {
		RespondServiceError(c, "default", err)
		return
	}
	c.Status(http.StatusNoContent)
}
