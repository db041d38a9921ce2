package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devboost/internal/auth"
	"devboost/internal/errors"
	"devboost/internal/model"
	"devboost/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.Sessions
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse is returned after a session is established.
type AuthResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

// UserResponse wraps the current user.
type UserResponse struct {
	User model.User `json:"user"`
}

// SuccessResponse is a bare acknowledgement.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return validationError(msgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Email and password are required")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorResponse(err, "An error occurred during login")
	}
	return h.establish(c, user, "An error occurred during login")
}

// Signup godoc
// @Summary Register a developer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return validationError(msgInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		if !hasTag(err, "required") && failedTag(err, "Password") == "min" {
			return validationError("Password must be at least 8 characters")
		}
		return validationError("Name, email, and password are required")
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return errorResponse(err, "An error occurred during signup")
	}
	return h.establish(c, user, "An error occurred during signup")
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return errorResponse(errors.ErrUnauthenticated, "")
	}
	return c.JSON(http.StatusOK, UserResponse{User: user})
}

func (h *AuthHandler) establish(c echo.Context, user model.User, fallback string) error {
	if err := h.sessions.Establish(c, user); err != nil {
		return errorResponse(err, fallback)
	}
	return c.JSON(http.StatusOK, AuthResponse{Success: true, User: user})
}
