package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type googleTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type updateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Gender      *string `json:"gender" validate:"omitempty,max=50"`
	DateOfBirth *string `json:"DOB"`
	Picture     *string `json:"picture"`
}

type createProjectRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"required,max=50"`
	DateStart   string  `json:"date_start"`
	DateEnd     *string `json:"date_end"`
}

type updateProjectRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Finished    *bool    `json:"finished"`
	Priority    *string  `json:"priority" validate:"omitempty,max=50"`
	DateStart   *string  `json:"date_start"`
	DateEnd     *string  `json:"date_end"`
	AssigneeIDs []string `json:"assignee_ids" validate:"omitempty,dive,required"`
}

type createTaskRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Finished    bool   `json:"finished"`
	TagID       string `json:"tag_id"`
	TagName     string `json:"tag_name" validate:"omitempty,max=100"`
	TagColor    string `json:"tag_color" validate:"omitempty,max=32"`
}

type updateTaskRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Finished    *bool    `json:"finished"`
	Date        *string  `json:"date"`
	TagID       *string  `json:"tag_id"`
	AssigneeIDs []string `json:"assignee_ids" validate:"omitempty,dive,required"`
}

type createTagRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"max=32"`
}

// bind decodes and validates the body. Both failures are reported as 400.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.Invalid("Invalid request body.", err)
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.Invalid(err.Error(), err)
	}
	return nil
}

// optionalDate parses a date pointer; nil and "" both mean "not given".
func optionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := entity.ParseOptionalDate(*value)
	if err != nil {
		return nil, domainerrors.Invalid(field+": "+err.Error(), err)
	}
	return t, nil
}

func requiredDate(field, value string) (time.Time, error) {
	t, err := optionalDate(field, &value)
	if err != nil || t == nil {
		return time.Time{}, err
	}
	return *t, nil
}
