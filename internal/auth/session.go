package auth

import (
	"errors"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "devboost/internal/errors"
	"devboost/internal/model"
)

const (
	// SessionCookieName is the cookie carrying the session credential.
	SessionCookieName = "auth-token"

	userContextKey = "user"
)

var errInvalidSession = errors.New("invalid session")

// Sessions reads and writes the session cookie.
type Sessions struct {
	jwt    *JWTService
	secure bool
}

// NewSessions creates cookie-based session handling. secure sets the cookie
// Secure flag and should be true outside local development.
func NewSessions(jwtService *JWTService, secure bool) *Sessions {
	return &Sessions{jwt: jwtService, secure: secure}
}

// Establish issues a credential for user and writes it to the response cookie.
func (s *Sessions) Establish(c echo.Context, user model.User) error {
	token, err := s.jwt.Issue(user)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie. The credential itself stays valid until
// its natural expiry.
func (s *Sessions) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentUser returns the user behind the request's session cookie.
func (s *Sessions) CurrentUser(c echo.Context) (model.User, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return model.User{}, false
	}
	return s.jwt.Verify(cookie.Value)
}

// RequireSession rejects requests without a valid session cookie. Missing,
// expired and tampered credentials produce the same 401 response.
func (s *Sessions) RequireSession() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + SessionCookieName,
		ContextKey:  userContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			user, ok := s.jwt.Verify(token)
			if !ok {
				return nil, errInvalidSession
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated, "")
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// UserFromContext returns the user stored by RequireSession.
func UserFromContext(c echo.Context) (model.User, bool) {
	user, ok := c.Get(userContextKey).(model.User)
	return user, ok
}
