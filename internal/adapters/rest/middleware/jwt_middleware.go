package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

var (
	ErrMissingToken   = errors.New("missing authentication token")
	ErrMalformedToken = errors.New("invalid authorization header format")
	ErrInvalidToken   = errors.New("invalid authentication token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrMissingSubject = errors.New("missing subject in token")
	ErrMissingEmail   = errors.New("missing email in token")
)

// keySource returns the key set tokens are verified against.
type keySource func(ctx context.Context) (jwk.Set, error)

type JWTMiddleware struct {
	keys   keySource
	issuer string
}

// NewJWTMiddleware verifies tokens against a JWKS endpoint. The key set is
// cached and refreshed in the background.
func NewJWTMiddleware(ctx context.Context, jwksEndpoint string, issuer string) (*JWTMiddleware, error) {
	cache, err := jwk.NewCache(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	if err := cache.Register(ctx, jwksEndpoint); err != nil {
		return nil, fmt.Errorf("failed to register JWKS URL: %w", err)
	}

	// Perform initial fetch to validate the URL
	if _, err := cache.Lookup(ctx, jwksEndpoint); err != nil {
		return nil, fmt.Errorf("failed to fetch initial JWKS: %w", err)
	}

	return &JWTMiddleware{
		keys: func(ctx context.Context) (jwk.Set, error) {
			return cache.Lookup(ctx, jwksEndpoint)
		},
		issuer: issuer,
	}, nil
}

// NewJWTMiddlewareWithKeySet verifies tokens against a fixed key set.
func NewJWTMiddlewareWithKeySet(set jwk.Set, issuer string) *JWTMiddleware {
	return &JWTMiddleware{
		keys:   func(context.Context) (jwk.Set, error) { return set, nil },
		issuer: issuer,
	}
}

// Middleware requires a valid bearer token.
func (m *JWTMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.authenticate(r)
		if err != nil {
			m.reject(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// Optional verifies a bearer token when one is sent and otherwise lets the
// request through anonymously. A token that is present but invalid is still
// rejected.
func (m *JWTMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := m.authenticate(r)
		if err != nil {
			m.reject(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func (m *JWTMiddleware) authenticate(r *http.Request) (Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Claims{}, ErrMissingToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return Claims{}, ErrMalformedToken
	}

	keySet, err := m.keys(r.Context())
	if err != nil {
		return Claims{}, fmt.Errorf("failed to get JWKS: %w", err)
	}

	token, err := jwt.ParseString(
		tokenString,
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.issuer),
	)
	if err != nil {
		if err.Error() == "exp not satisfied" || strings.Contains(err.Error(), "expired") {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := token.Get("sub", &claims.Subject); err != nil || claims.Subject == "" {
		return Claims{}, ErrMissingSubject
	}
	if err := token.Get("email", &claims.Email); err != nil || claims.Email == "" {
		return Claims{}, ErrMissingEmail
	}
	return claims, nil
}

func (m *JWTMiddleware) reject(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrMalformedToken):
		WriteJSONError(w, ErrorCodeUnauthorized, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrTokenExpired):
		WriteJSONError(w, ErrorCodeTokenExpired, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrMissingSubject), errors.Is(err, ErrMissingEmail):
		WriteJSONError(w, ErrorCodeInvalidToken, err.Error(), http.StatusUnauthorized)
	default:
		WriteJSONError(w, ErrorCodeInternalServerError, "failed to verify token", http.StatusInternalServerError)
	}
}
