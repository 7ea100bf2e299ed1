package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kotche/noteshare/internal/model"
	"github.com/kotche/noteshare/internal/repository/users"
)

type jwtClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type JWTService struct {
	key  []byte
	ttl  time.Duration
	repo users.Repository
}

func NewJWTService(secretKey string, ttl time.Duration, repo users.Repository) *JWTService {
	return &JWTService{
		key:  []byte(secretKey),
		ttl:  ttl,
		repo: repo,
	}
}

func (s *JWTService) Issue(user *model.User) (string, error) {
	claims := jwtClaims{
		UserID: int64(user.ID),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token for user '%d': %w", user.ID, err)
	}

	return signed, nil
}

func (s *JWTService) Verify(ctx context.Context, bearer string) (*Claims, error) {
	claims := &jwtClaims{}

	parsed, err := jwt.ParseWithClaims(bearer, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == 0 {
		return nil, model.ErrInvalidToken
	}

	// A deleted user's still-unexpired token must fail here; there is no
	// revocation list.
	exists, err := s.repo.UserExists(ctx, model.UserID(claims.UserID))
	if err != nil {
		return nil, fmt.Errorf("failed to check token user exists: %w", err)
	}
	if !exists {
		return nil, model.ErrInvalidToken
	}

	return &Claims{
		UserID: model.UserID(claims.UserID),
		Email:  claims.Email,
	}, nil
}
