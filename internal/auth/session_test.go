package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devboost/internal/model"
)

func newSessions(secure bool) *Sessions {
	return NewSessions(NewJWTService("test-secret"), secure)
}

func TestSessions_EstablishCookieAttributes(t *testing.T) {
	for _, secure := range []bool{false, true} {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

		require.NoError(t, newSessions(secure).Establish(c, testUsers[0]))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, SessionCookieName, cookie.Name)
		assert.NotEmpty(t, cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 7*24*60*60, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, secure, cookie.Secure)
	}
}

func TestSessions_ClearExpiresCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	newSessions(false).Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSessions_CurrentUser(t *testing.T) {
	sessions := newSessions(false)
	token, err := sessions.jwt.Issue(testUsers[1])
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   model.User
		wantOK bool
	}{
		{name: "no cookie"},
		{name: "empty cookie", cookie: &http.Cookie{Name: SessionCookieName, Value: ""}},
		{name: "garbage cookie", cookie: &http.Cookie{Name: SessionCookieName, Value: "junk"}},
		{name: "other cookie name", cookie: &http.Cookie{Name: "session", Value: token}},
		{name: "valid", cookie: &http.Cookie{Name: SessionCookieName, Value: token}, want: testUsers[1], wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			got, ok := sessions.CurrentUser(c)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessions_RequireSession(t *testing.T) {
	sessions := newSessions(false)
	token, err := sessions.jwt.Issue(testUsers[0])
	require.NoError(t, err)
	expired, err := sessions.jwt.WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }).Issue(testUsers[0])
	require.NoError(t, err)

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		user, ok := UserFromContext(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		return c.JSON(http.StatusOK, user)
	}, sessions.RequireSession())

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
	}{
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "tampered", cookie: token + "x", wantStatus: http.StatusUnauthorized},
		{name: "expired", cookie: expired, wantStatus: http.StatusUnauthorized},
		{name: "valid", cookie: token, wantStatus: http.StatusOK},
	}

	var unauthorizedBodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if rec.Code == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"email":"admin@devboost.ai"`)
			} else {
				unauthorizedBodies = append(unauthorizedBodies, rec.Body.String())
			}
		})
	}

	require.Len(t, unauthorizedBodies, 3)
	assert.Equal(t, unauthorizedBodies[0], unauthorizedBodies[1])
	assert.Equal(t, unauthorizedBodies[0], unauthorizedBodies[2])
	assert.Contains(t, unauthorizedBodies[0], `"code":"unauthenticated"`)
}
