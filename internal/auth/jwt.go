package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"trendsight/internal/models"
)

// Claims carries the session identity inside a signed token.
type Claims struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates session tokens.
type JWTManager struct {
	secret     []byte
	expiration time.Duration
}

func NewJWTManager(secret string, expiration time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

func (m *JWTManager) GenerateToken(user models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.expiration)
	claims := &Claims{
		Email: user.Email,
		Plan:  user.Plan,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateToken validates a token and returns the session it encodes.
func (m *JWTManager) ValidateToken(tokenString string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return models.Session{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Session{}, errors.New("invalid token")
	}

	return models.Session{
		UserID: claims.Subject,
		Email:  claims.Email,
		Plan:   claims.Plan,
	}, nil
}
