package api

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

func (h *handlers) listNotifications(c *gin.Context) {
	// Base 10 only; anything unparsable falls back to the service cap.
	limit, _ := strconv.Atoi(c.Query("limit"))
	notifications, err := h.Notifications.List(c.Request.Context(), callerOf(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, notifications)
}

func (h *handlers) unreadCount(c *gin.Context) {
	count, err := h.Notifications.UnreadCount(c.Request.Context(), callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"count": count})
}

func (h *handlers) markAllRead(c *gin.Context) {
	updated, err := h.Notifications.MarkAllRead(c.Request.Context(), callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *handlers) markRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	notification, err := h.Notifications.MarkRead(c.Request.Context(), id, callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, notification)
}
