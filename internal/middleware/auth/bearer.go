package auth

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// contextKey is used for storing user in context
type contextKey string

const (
	userContextKey contextKey = "authenticated_user"
	echoUserKey               = "user"
)

// BearerAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the resolved user in both the echo and the request context.
// Every failure is reported as ErrInvalidToken.
func BearerAuth(authenticator Authenticator, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				logger.Debug("Missing or malformed authorization header", zap.String("path", path))
				return domainerrors.ErrInvalidToken
			}

			user, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				logger.Debug("Bearer authentication failed", zap.String("path", path), zap.Error(err))
				return err
			}

			ctx := context.WithValue(c.Request().Context(), userContextKey, user)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(echoUserKey, user)
			c.Set("user_id", user.ID)

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok && user != nil
}

// RequireUser returns the authenticated user or ErrInvalidToken when the
// route is not behind BearerAuth.
func RequireUser(c echo.Context) (*entity.User, error) {
	if user, ok := c.Get(echoUserKey).(*entity.User); ok && user != nil {
		return user, nil
	}
	if user, ok := GetUserFromContext(c.Request().Context()); ok {
		return user, nil
	}
	return nil, domainerrors.ErrInvalidToken
}
