package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(t *testing.T, authenticator Authenticator, header string) (*httptest.ResponseRecorder, *entity.User, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_projects", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	handler := BearerAuth(authenticator, zap.NewNop())(func(c echo.Context) error {
		u, err := RequireUser(c)
		require.NoError(t, err)
		fromCtx, ok := GetUserFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Same(t, u, fromCtx)
		assert.Equal(t, u.ID, c.Get("user_id"))
		seen = u
		return c.NoContent(http.StatusOK)
	})
	return rec, seen, handler(c)
}

func TestBearerAuth_Success(t *testing.T) {
	user := &entity.User{ID: "u-1", Email: "a@example.com"}
	authenticator := new(MockAuthenticator)
	authenticator.On("Authenticate", mock.Anything, "token-abc").Return(user, nil)

	rec, seen, err := serve(t, authenticator, "Bearer token-abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, user, seen)
	authenticator.AssertExpectations(t)
}

func TestBearerAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*MockAuthenticator)
	}{
		{"missing header", "", nil},
		{"wrong scheme", "Basic dXNlcjpwYXNz", nil},
		{"empty token", "Bearer   ", nil},
		{"rejected token", "Bearer expired", func(m *MockAuthenticator) {
			m.On("Authenticate", mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := new(MockAuthenticator)
			if tt.setup != nil {
				tt.setup(authenticator)
			}
			_, seen, err := serve(t, authenticator, tt.header)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			assert.Nil(t, seen)
			authenticator.AssertExpectations(t)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = bearerToken("Bearer")
	assert.False(t, ok)
}

func TestRequireUser_NotAuthenticated(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := RequireUser(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
