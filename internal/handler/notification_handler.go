package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devboost/internal/service"
)

const msgNotificationsFailed = "Failed to update notifications"

// NotificationHandler manages the notification feed.
type NotificationHandler struct {
	dashboard service.DashboardService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(dashboard service.DashboardService) *NotificationHandler {
	return &NotificationHandler{dashboard: dashboard}
}

// List godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security CookieAuth
// @Success 200 {object} service.NotificationFeed
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	return h.respond(c)(h.dashboard.Notifications(c.Request().Context(), userID))
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Security CookieAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} service.NotificationFeed
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	return h.respond(c)(h.dashboard.MarkNotificationRead(c.Request().Context(), userID, c.Param("id")))
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Security CookieAuth
// @Success 200 {object} service.NotificationFeed
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	return h.respond(c)(h.dashboard.MarkAllNotificationsRead(c.Request().Context(), userID))
}

// Clear godoc
// @Summary Remove one notification
// @Tags notifications
// @Produce json
// @Security CookieAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} service.NotificationFeed
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Clear(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	return h.respond(c)(h.dashboard.ClearNotification(c.Request().Context(), userID, c.Param("id")))
}

func (h *NotificationHandler) respond(c echo.Context) func(service.NotificationFeed, error) error {
	return func(feed service.NotificationFeed, err error) error {
		if err != nil {
			return errorResponse(err, msgNotificationsFailed)
		}
		return c.JSON(http.StatusOK, feed)
	}
}
