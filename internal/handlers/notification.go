package handlers

import (
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the principal's own notifications.
type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary      List the current user's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread  query     bool  false  "Only unread"
// @Success      200     {object}  dto.ListNotificationsResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	list, err := h.svc.List(c.Request.Context(), auth.PrincipalFromContext(c), unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.NotificationResponse, len(list))
	for i := range list {
		out[i] = notificationToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListNotificationsResponse{Items: out})
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  dto.NotificationResponse
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	n, err := h.svc.MarkRead(c.Request.Context(), auth.PrincipalFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notificationToResponse(n))
}

// Delete godoc
// @Summary      Delete one of the current user's notifications
// @Tags         notifications
// @Security     BearerAuth
// @Param        id   path  int  true  "Notification ID"
// @Success      204
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.PrincipalFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func notificationToResponse(n dom.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:               n.ID,
		NotificationType: string(n.Type),
		Message:          n.Message,
		Read:             n.Read,
		CreatedAt:        n.CreatedAt,
	}
}
