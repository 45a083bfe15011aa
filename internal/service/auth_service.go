package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tam-survey/internal/config"
	"tam-survey/internal/dto"
	"tam-survey/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	RoleAdmin      = "admin"
	RoleRespondent = "respondent"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService verifies the bearer tokens issued by the external identity provider.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	// CreateJWT signs a token with the shared secret. Used for local
	// development and tests; production tokens come from the identity provider.
	CreateJWT(userID, role string, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	secret []byte
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return &authServiceImpl{secret: []byte(cfg.JWTSecret)}, nil
}

func (s *authServiceImpl) CreateJWT(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidJWTToken)
	}
	return claims, nil
}
