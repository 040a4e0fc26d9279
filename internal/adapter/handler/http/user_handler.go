package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/adapter/mapper"
	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/middleware/auth"
	"github.com/wekeepgrowing/project-planner/internal/usecase"
)

type UserHandler struct {
	users  *usecase.UserUsecase
	logger *zap.Logger
}

func NewUserHandler(users *usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToUserViews(profiles))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	profile, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToUserView(profile))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	dob, err := optionalDate("DOB", req.DateOfBirth)
	if err != nil {
		return err
	}

	profile, err := h.users.Update(c.Request().Context(), actor, c.Param("id"), entity.UserChanges{
		Name:        req.Name,
		Email:       req.Email,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Picture:     req.Picture,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToUserView(profile))
}
