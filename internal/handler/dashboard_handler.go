package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devboost/internal/auth"
	"devboost/internal/errors"
	"devboost/internal/service"
	"devboost/internal/telemetry"
)

const msgDashboardFailed = "Failed to load dashboard data"

// DashboardHandler serves the simulated analytics feeds.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// MetricsResponse holds the headline metrics.
type MetricsResponse struct {
	Metrics []telemetry.Metric `json:"metrics"`
}

// DeploymentsResponse holds recent deployments.
type DeploymentsResponse struct {
	Deployments []telemetry.Deployment `json:"deployments"`
}

// ActivityResponse holds the team activity feed, newest first.
type ActivityResponse struct {
	Activities []telemetry.Activity `json:"activities"`
}

// PerformanceResponse holds the performance chart window.
type PerformanceResponse struct {
	Points []telemetry.PerformancePoint `json:"points"`
}

// Overview godoc
// @Summary Every dashboard feed at once
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} service.Overview
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	overview, err := h.dashboard.Overview(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err, msgDashboardFailed)
	}
	return c.JSON(http.StatusOK, overview)
}

// Reset godoc
// @Summary Restart the dashboard simulation from seed data
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/reset [post]
func (h *DashboardHandler) Reset(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	if err := h.dashboard.Reset(c.Request().Context(), userID); err != nil {
		return errorResponse(err, "Failed to reset dashboard")
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Metrics godoc
// @Summary Headline team metrics
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} MetricsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	metrics, err := h.dashboard.Metrics(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err, msgDashboardFailed)
	}
	return c.JSON(http.StatusOK, MetricsResponse{Metrics: metrics})
}

// Deployments godoc
// @Summary Recent deployments
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} DeploymentsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/deployments [get]
func (h *DashboardHandler) Deployments(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	deployments, err := h.dashboard.Deployments(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err, msgDashboardFailed)
	}
	return c.JSON(http.StatusOK, DeploymentsResponse{Deployments: deployments})
}

// Activity godoc
// @Summary Team activity feed
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} ActivityResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	activity, err := h.dashboard.Activity(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err, msgDashboardFailed)
	}
	return c.JSON(http.StatusOK, ActivityResponse{Activities: activity})
}

// Performance godoc
// @Summary Performance chart samples
// @Tags dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} PerformanceResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard/performance [get]
func (h *DashboardHandler) Performance(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	points, err := h.dashboard.Performance(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(err, msgDashboardFailed)
	}
	return c.JSON(http.StatusOK, PerformanceResponse{Points: points})
}

func sessionUserID(c echo.Context) (string, error) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return "", errorResponse(errors.ErrUnauthenticated, "")
	}
	return user.ID, nil
}
