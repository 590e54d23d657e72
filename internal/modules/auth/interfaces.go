package auth

import (
	"context"

	"glowsalon/internal/domain"
	jwtsvc "glowsalon/internal/pkg/jwt"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// TokenIssuer mints and checks the session and reset JWT kinds.
type TokenIssuer interface {
	GenerateAccessToken(userID int64, role string) (string, error)
	GenerateRefreshToken(userID int64, role string) (string, error)
	ValidateRefreshToken(tokenStr string) (*jwtsvc.Claims, error)
	GeneratePasswordResetToken(userID int64) (string, error)
	ValidatePasswordResetToken(tokenStr string) (*jwtsvc.Claims, error)
}
