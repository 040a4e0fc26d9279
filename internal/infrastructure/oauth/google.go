package oauth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

// ValidateFunc matches idtoken.Validate.
type ValidateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleVerifier checks Google ID tokens issued for the configured client.
type GoogleVerifier struct {
	clientID string
	validate ValidateFunc
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, validate: idtoken.Validate}
}

// NewGoogleVerifierWith uses a custom validator, e.g. one built from
// idtoken.NewValidator with a specific HTTP client.
func NewGoogleVerifierWith(clientID string, validate ValidateFunc) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID, validate: validate}
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*entity.IdentityClaims, error) {
	if v.clientID == "" {
		return nil, domainerrors.ErrInvalidGoogleToken.WithCause(errors.New("google client id is not configured"))
	}
	if token == "" {
		return nil, domainerrors.ErrInvalidGoogleToken
	}

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, domainerrors.ErrInvalidGoogleToken.WithCause(err)
	}

	claims := &entity.IdentityClaims{
		Subject:   payload.Subject,
		Issuer:    payload.Issuer,
		Audience:  payload.Audience,
		ExpiresAt: payload.Expires,
	}
	claims.Email, _ = payload.Claims["email"].(string)
	claims.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	claims.Name, _ = payload.Claims["name"].(string)
	claims.Picture, _ = payload.Claims["picture"].(string)

	if claims.Email == "" {
		return nil, domainerrors.ErrInvalidGoogleToken.WithCause(fmt.Errorf("token for subject %q has no email", claims.Subject))
	}
	return claims, nil
}
