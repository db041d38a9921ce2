package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"devboost/internal/model"
)

// SessionTTL is how long an issued session credential stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Claims represents JWT claims.
type Claims struct {
	User model.User `json:"user"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies session credentials.
type JWTService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock returns a copy of the service that reads time from now.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	return &JWTService{secret: s.secret, now: now}
}

// Issue signs a session credential for user that expires after SessionTTL.
func (s *JWTService) Issue(user model.User) (string, error) {
	now := s.now()
	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the user embedded in tokenString. Bad signatures, malformed
// input, expired tokens and unknown roles all report ok == false.
func (s *JWTService) Verify(tokenString string) (user model.User, ok bool) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return model.User{}, false
	}
	return claims.User, true
}

func (s *JWTService) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.User.ID == "" || !claims.User.Role.Valid() {
		return nil, errors.New("invalid user claim")
	}
	return claims, nil
}
