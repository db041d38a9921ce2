package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devboost/internal/model"
)

var testUsers = []model.User{
	{ID: "1", Email: "admin@devboost.ai", Name: "Admin User", Role: model.RoleAdmin},
	{ID: "2", Email: "dev@devboost.ai", Name: "Developer User", Role: model.RoleDeveloper},
	{ID: "f1c2", Email: "viewer@example.com", Name: "Vi Ewer", Role: model.RoleViewer},
	{ID: "unicode", Email: "ü@example.com", Name: "Zoë Ünal", Role: model.RoleDeveloper},
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret")
	for _, user := range testUsers {
		token, err := svc.Issue(user)
		require.NoError(t, err)

		got, ok := svc.Verify(token)
		require.True(t, ok, "user %s", user.ID)
		assert.Equal(t, user, got)
	}
}

func TestIssue_SetsSevenDayExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := NewJWTService("test-secret").WithClock(func() time.Time { return issued })

	token, err := svc.Issue(testUsers[0])
	require.NoError(t, err)

	claims := &Claims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Header["alg"])
	assert.True(t, claims.IssuedAt.Time.Equal(issued))
	assert.True(t, claims.ExpiresAt.Time.Equal(issued.Add(7*24*time.Hour)))
}

func TestVerify_Expiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := NewJWTService("test-secret").WithClock(func() time.Time { return issued })
	token, err := issuer.Issue(testUsers[1])
	require.NoError(t, err)

	justBefore := issuer.WithClock(func() time.Time { return issued.Add(SessionTTL - time.Minute) })
	_, ok := justBefore.Verify(token)
	assert.True(t, ok)

	after := issuer.WithClock(func() time.Time { return issued.Add(SessionTTL + time.Second) })
	_, ok = after.Verify(token)
	assert.False(t, ok)
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret")
	valid, err := svc.Issue(testUsers[0])
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)

	otherSecret, err := NewJWTService("other-secret").Issue(testUsers[0])
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "three dots of junk", token: "a.b.c"},
		{name: "tampered payload", token: parts[0] + "." + parts[1] + "x." + parts[2]},
		{name: "tampered signature", token: parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))},
		{name: "other secret", token: otherSecret},
		{name: "HS512", token: sign(jwt.SigningMethodHS512, []byte("test-secret"), &Claims{
			User:             testUsers[0],
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{name: "alg none", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, &Claims{
			User:             testUsers[0],
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{name: "missing expiry", token: sign(jwt.SigningMethodHS256, []byte("test-secret"), &Claims{
			User: testUsers[0],
		})},
		{name: "unknown role", token: sign(jwt.SigningMethodHS256, []byte("test-secret"), &Claims{
			User:             model.User{ID: "9", Email: "root@example.com", Role: "root"},
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
		})},
		{name: "missing user", token: sign(jwt.SigningMethodHS256, []byte("test-secret"), jwt.MapClaims{
			"exp": future.Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := svc.Verify(tt.token)
			assert.False(t, ok)
			assert.Equal(t, model.User{}, user)
		})
	}
}
