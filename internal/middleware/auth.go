package middleware

import (
	"errors"
	"strings"

	"customer-lookup/internal/config"
	apierrors "customer-lookup/internal/errors"
	"customer-lookup/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that verifies platform-issued bearer tokens.
// Tokens are signed by the platform auth service with RS256; this service only
// holds the public key. When auth is disabled in config the middleware is a
// passthrough, which keeps local development and tests simple.
func RequireAuth(cfg *config.AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			tokenString, err := extractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return cfg.PublicKey, nil
			}, jwt.WithIssuer(cfg.Issuer))

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			if !token.Valid {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			c.Set("subject", claims.Subject)

			return next(c)
		}
	}
}

func extractTokenFromHeader(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}
