package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Principal kinds carried in the token's kind claim.
const (
	KindDriver = "driver"
	KindAdmin  = "admin"
)

const principalContextKey = "principal"

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	ID   kernel.UUID
	Kind string
}

type authClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// Auth issues and verifies the service's HS256 bearer tokens.
type Auth struct {
	secret []byte
}

// NewAuth creates an Auth with the signing secret.
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// IssueToken signs a token for the subject with the given kind claim.
func (a *Auth) IssueToken(subject kernel.UUID, kind string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})

	return token.SignedString(a.secret)
}

// parseToken verifies the signature and expiry and returns the Principal.
func (a *Auth) parseToken(raw string) (Principal, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !token.Valid {
		return Principal{}, errors.New("invalid token")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}

	return Principal{ID: id, Kind: claims.Kind}, nil
}

// Middleware authenticates the request and rejects callers whose kind is not
// in the allowed set. The Principal is stored on the request context.
func (a *Auth) Middleware(allowedKinds ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Success: false,
					Error:   "missing bearer token",
				})
			}

			principal, err := a.parseToken(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Success: false,
					Error:   "invalid or expired token",
				})
			}

			allowed := false
			for _, kind := range allowedKinds {
				if principal.Kind == kind {
					allowed = true
					break
				}
			}
			if !allowed {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Success: false,
					Error:   "insufficient permissions",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// PrincipalFromContext returns the authenticated Principal, if any.
func PrincipalFromContext(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}
