package service

import (
	"time"

	apperrors "lab-portal/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionClaims bind a browser cookie to one server-side session record.
type SessionClaims struct {
	UserID    int64  `json:"userId"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Generate(userID int64, sessionID string) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
	GetTTL() time.Duration
}

type tokenService struct {
	SecretKey string
	TokenExp  time.Duration
}

func NewTokenService(secretKey string, tokenExp time.Duration) TokenService {
	return &tokenService{
		SecretKey: secretKey,
		TokenExp:  tokenExp,
	}
}

func (s *tokenService) Generate(userID int64, sessionID string) (string, error) {
	claims := &SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TokenExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.SecretKey))
}

func (s *tokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.SecretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.SessionID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (s *tokenService) GetTTL() time.Duration {
	return s.TokenExp
}
