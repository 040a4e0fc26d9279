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

type ProjectHandler struct {
	projects *usecase.ProjectUsecase
	logger   *zap.Logger
}

func NewProjectHandler(projects *usecase.ProjectUsecase, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// ListProjects handles GET /get_projects
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	projects, err := h.projects.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToProjectViews(projects))
}

// GetProject handles GET /get_project/:id
func (h *ProjectHandler) GetProject(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	project, err := h.projects.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToProjectView(project))
}

// CreateProject handles POST /create_project
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	actor, in, err := h.createInput(c)
	if err != nil {
		return err
	}
	project, err := h.projects.Create(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToProjectView(project))
}

// CreateProjectWithAI handles POST /create_project/ai
func (h *ProjectHandler) CreateProjectWithAI(c echo.Context) error {
	actor, in, err := h.createInput(c)
	if err != nil {
		return err
	}
	project, err := h.projects.CreateWithAI(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToProjectView(project))
}

func (h *ProjectHandler) createInput(c echo.Context) (*entity.User, usecase.ProjectInput, error) {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return nil, usecase.ProjectInput{}, err
	}

	var req createProjectRequest
	if err := bind(c, &req); err != nil {
		return nil, usecase.ProjectInput{}, err
	}
	start, err := requiredDate("date_start", req.DateStart)
	if err != nil {
		return nil, usecase.ProjectInput{}, err
	}
	end, err := optionalDate("date_end", req.DateEnd)
	if err != nil {
		return nil, usecase.ProjectInput{}, err
	}

	return actor, usecase.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		DateStart:   start,
		DateEnd:     end,
	}, nil
}

// UpdateProject handles PUT /edit_project/:id
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	start, err := optionalDate("date_start", req.DateStart)
	if err != nil {
		return err
	}
	end, err := optionalDate("date_end", req.DateEnd)
	if err != nil {
		return err
	}

	project, err := h.projects.Update(c.Request().Context(), actor, c.Param("id"), entity.ProjectChanges{
		Name:        req.Name,
		Description: req.Description,
		Finished:    req.Finished,
		Priority:    req.Priority,
		DateStart:   start,
		DateEnd:     end,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToProjectView(project))
}

// DeleteProject handles DELETE /delete_project/:id
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	if err := h.projects.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.MessageView{Message: "Successfully deleted the project."})
}
