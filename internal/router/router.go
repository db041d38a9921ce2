package router

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"devboost/internal/auth"
	"devboost/internal/errors"
	"devboost/internal/handler"
)

// Handlers groups the route handlers.
type Handlers struct {
	Auth          *handler.AuthHandler
	AI            *handler.AIHandler
	Dashboard     *handler.DashboardHandler
	Notifications *handler.NotificationHandler
	Team          *handler.TeamHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, logger *zap.Logger, sessions *auth.Sessions, h Handlers) {
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/logout", h.Auth.Logout)

	// Secured routes (require a session cookie). The gate is attached per
	// route so unknown paths under /api still answer 404.
	session := sessions.RequireSession()

	api.GET("/auth/me", h.Auth.Me, session)

	api.POST("/ai/generate-tests", h.AI.GenerateTests, session)
	api.POST("/ai/generate-docs", h.AI.GenerateDocs, session)
	api.POST("/ai/review-code", h.AI.ReviewCode, session)

	api.GET("/dashboard", h.Dashboard.Overview, session)
	api.POST("/dashboard/reset", h.Dashboard.Reset, session)
	api.GET("/dashboard/metrics", h.Dashboard.Metrics, session)
	api.GET("/dashboard/deployments", h.Dashboard.Deployments, session)
	api.GET("/dashboard/activity", h.Dashboard.Activity, session)
	api.GET("/dashboard/performance", h.Dashboard.Performance, session)

	api.GET("/notifications", h.Notifications.List, session)
	api.POST("/notifications/read-all", h.Notifications.MarkAllRead, session)
	api.POST("/notifications/:id/read", h.Notifications.MarkRead, session)
	api.DELETE("/notifications/:id", h.Notifications.Clear, session)

	api.GET("/team", h.Team.List, session)
	api.PATCH("/team/:id/role", h.Team.ChangeRole, session)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewErrorHandler renders every error as errors.ErrorResponse. Messages of
// 5xx responses never reach the client.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := errors.ErrorResponse{Error: "Internal server error", Code: errors.CodeUnexpected}

		var he *echo.HTTPError
		if stderrors.As(err, &he) {
			status = he.Code
			switch msg := he.Message.(type) {
			case errors.ErrorResponse:
				body = msg
			case string:
				if status < http.StatusInternalServerError {
					body = errors.ErrorResponse{Error: msg, Code: codeForStatus(status)}
				}
			default:
				if status < http.StatusInternalServerError {
					body = errors.ErrorResponse{Error: http.StatusText(status), Code: codeForStatus(status)}
				}
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("write error response", zap.Error(err))
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.CodeValidation
	case http.StatusUnauthorized:
		return errors.CodeUnauthenticated
	case http.StatusForbidden:
		return errors.CodeForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.CodeNotFound
	case http.StatusConflict:
		return errors.CodeConflict
	default:
		return errors.CodeUnexpected
	}
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
