package middleware

import (
	"context"

	"github.com/google/wire"

	userapp "github.com/philly/arch-gallery/backend/internal/users/application"
)

// ProviderSet is the wire provider set for middleware components
var ProviderSet = wire.NewSet(
	ProvideJWTMiddleware,
	NewAuthAdapter,
	wire.Bind(new(UserLookup), new(*userapp.UserService)),
	NewRoleMiddleware,
)

// JWTConfig carries the minimal settings needed to construct the JWT middleware
type JWTConfig struct {
	JWKS   string
	Issuer string
}

// ProvideJWTMiddleware creates JWT middleware from JWTConfig
func ProvideJWTMiddleware(ctx context.Context, cfg JWTConfig) (*JWTMiddleware, error) {
	return NewJWTMiddleware(ctx, cfg.JWKS, cfg.Issuer)
}
