package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/adapter/mapper"
	"github.com/wekeepgrowing/project-planner/internal/usecase"
)

type AuthHandler struct {
	auth   *usecase.AuthUsecase
	logger *zap.Logger
}

func NewAuthHandler(auth *usecase.AuthUsecase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// SignupNormal handles POST /signup/normal
func (h *AuthHandler) SignupNormal(c echo.Context) error {
	var req signupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.auth.SignupNormal(c.Request().Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTokenView(token))
}

// SignupGoogle handles POST /signup/google
func (h *AuthHandler) SignupGoogle(c echo.Context) error {
	var req googleTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.auth.SignupGoogle(c.Request().Context(), req.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTokenView(token))
}

// LoginNormal handles POST /login/normal
func (h *AuthHandler) LoginNormal(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.auth.LoginNormal(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTokenView(token))
}

// LoginGoogle handles POST /login/google. It returns the verified identity
// claims, not a bearer token.
func (h *AuthHandler) LoginGoogle(c echo.Context) error {
	var req googleTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	claims, err := h.auth.LoginGoogle(c.Request().Context(), req.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}
