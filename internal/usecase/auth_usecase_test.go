package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

func TestAuthUsecase_SignupThenLogin(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()

	token, err := f.auth.SignupNormal(ctx, SignupInput{Name: "Ada", Email: " Ada@Example.com ", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	user, err := f.auth.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.AuthTypeNormal, user.AuthType)

	login, err := f.auth.LoginNormal(ctx, "ADA@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := f.tokens.Decode(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthUsecase_SignupDuplicateEmail(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()

	_, err := f.auth.SignupNormal(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = f.auth.SignupNormal(ctx, SignupInput{Name: "Other", Email: "ADA@example.com", Password: "pw2"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)

	users, err := f.repos.User.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthUsecase_SignupPasswordByteLimit(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"72 ascii bytes", strings.Repeat("a", 72), nil},
		{"36 two-byte runes", strings.Repeat("é", 36), nil},
		{"73 ascii bytes", strings.Repeat("a", 73), domainerrors.ErrPasswordTooLong},
		{"40 two-byte runes", strings.Repeat("é", 40), domainerrors.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, nil, nil)
			ctx := context.Background()

			_, err := f.auth.SignupNormal(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				users, listErr := f.repos.User.List(ctx)
				require.NoError(t, listErr)
				assert.Empty(t, users)
				return
			}
			require.NoError(t, err)
			_, err = f.auth.LoginNormal(ctx, "ada@example.com", tt.password)
			assert.NoError(t, err)
		})
	}
}

func TestAuthUsecase_LoginFailuresShareOneError(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	f.signup(t, "ada", "ada@example.com")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret-ada"},
		{"wrong password", "ada@example.com", "nope"},
		{"empty password", "ada@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.LoginNormal(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthUsecase_SignupSendsWelcomeAndEvent(t *testing.T) {
	mail := new(MockMailRepository)
	events := new(MockEventPublisher)
	mail.On("SendMail", mock.Anything, "ada@example.com", "Welcome to Project Planner", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Ada") && strings.Contains(body, "https://planner.test")
	})).Return(nil)
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e entity.Event) bool {
		return e.Type == entity.EventUserSignedUp
	})).Return(errors.New("redis down"))

	notifier := NewNotifier(mail, events, "https://planner.test", zap.NewNop())
	f := newFixture(t, nil, nil, notifier)

	_, err := f.auth.SignupNormal(context.Background(), SignupInput{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err, "mail and event failures must not fail the signup")

	mail.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestAuthUsecase_Google(t *testing.T) {
	ctx := context.Background()
	claims := &entity.IdentityClaims{Subject: "g-1", Email: "grace@example.com", EmailVerified: true, Name: "Grace", Picture: "https://img/g.png"}

	t.Run("signup creates a google user", func(t *testing.T) {
		identity := new(MockIdentityVerifier)
		identity.On("Verify", mock.Anything, "good").Return(claims, nil)
		f := newFixture(t, identity, nil, nil)

		token, err := f.auth.SignupGoogle(ctx, "good")
		require.NoError(t, err)

		user, err := f.auth.Authenticate(ctx, token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, entity.AuthTypeGoogle, user.AuthType)
		assert.Equal(t, "Grace", user.Name)
		assert.Equal(t, "https://img/g.png", user.Picture)
	})

	t.Run("signup with a known email signs that user in", func(t *testing.T) {
		identity := new(MockIdentityVerifier)
		identity.On("Verify", mock.Anything, "good").Return(claims, nil)
		f := newFixture(t, identity, nil, nil)
		existing := f.signup(t, "grace", "grace@example.com")

		token, err := f.auth.SignupGoogle(ctx, "good")
		require.NoError(t, err)
		user, err := f.auth.Authenticate(ctx, token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
	})

	t.Run("unverified email is rejected", func(t *testing.T) {
		unverified := *claims
		unverified.EmailVerified = false
		identity := new(MockIdentityVerifier)
		identity.On("Verify", mock.Anything, "unverified").Return(&unverified, nil)
		f := newFixture(t, identity, nil, nil)
		f.signup(t, "grace", "grace@example.com")

		_, err := f.auth.SignupGoogle(ctx, "unverified")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGoogleToken)

		users, err := f.repos.User.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, entity.AuthTypeNormal, users[0].AuthType)
	})

	t.Run("unverified email cannot create an account", func(t *testing.T) {
		unverified := *claims
		unverified.Email = "new@example.com"
		unverified.EmailVerified = false
		identity := new(MockIdentityVerifier)
		identity.On("Verify", mock.Anything, "unverified").Return(&unverified, nil)
		f := newFixture(t, identity, nil, nil)

		_, err := f.auth.SignupGoogle(ctx, "unverified")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGoogleToken)

		users, err := f.repos.User.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("login returns the verified claims", func(t *testing.T) {
		identity := new(MockIdentityVerifier)
		identity.On("Verify", mock.Anything, "good").Return(claims, nil)
		f := newFixture(t, identity, nil, nil)

		got, err := f.auth.LoginGoogle(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, claims, got)
	})

	t.Run("rejected token", func(t *testing.T) {
		identity := new(MockIdentityVerifier)
		identity.On("Verify", mock.Anything, "bad").Return(nil, errors.New("token expired"))
		f := newFixture(t, identity, nil, nil)

		_, err := f.auth.SignupGoogle(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGoogleToken)
		_, err = f.auth.LoginGoogle(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGoogleToken)
	})

	t.Run("no verifier configured", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		_, err := f.auth.LoginGoogle(ctx, "anything")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidGoogleToken)
	})
}

func TestAuthUsecase_Authenticate(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	user := f.signup(t, "ada", "ada@example.com")

	valid, err := f.tokens.Sign(user.ID, user.Email)
	require.NoError(t, err)
	orphan, err := f.tokens.Sign("no-such-user", "ghost@example.com")
	require.NoError(t, err)
	expired, err := NewJWTTokenService("test-secret", 30*time.Second,
		WithClock(func() time.Time { return time.Now().Add(-time.Minute) })).Sign(user.ID, user.Email)
	require.NoError(t, err)
	foreign, err := NewJWTTokenService("other-secret", 30*time.Second).Sign(user.ID, user.Email)
	require.NoError(t, err)

	got, err := f.auth.Authenticate(ctx, valid.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"unknown user", orphan.AccessToken},
		{"expired", expired.AccessToken},
		{"wrong key", foreign.AccessToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Authenticate(ctx, tt.token)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}
