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

type TaskHandler struct {
	tasks  *usecase.TaskUsecase
	tags   *usecase.TagUsecase
	logger *zap.Logger
}

func NewTaskHandler(tasks *usecase.TaskUsecase, tags *usecase.TagUsecase, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, tags: tags, logger: logger}
}

// ListTasks handles GET /get_tasks/:project_id
func (h *TaskHandler) ListTasks(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	tasks, err := h.tasks.ListByProject(c.Request().Context(), actor, c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTaskViews(tasks))
}

// ListAssignedTasks handles GET /assigned_tasks
func (h *TaskHandler) ListAssignedTasks(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	tasks, err := h.tasks.ListAssigned(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTaskViews(tasks))
}

// CreateTask handles POST /create_task/:project_id
func (h *TaskHandler) CreateTask(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	date, err := requiredDate("date", req.Date)
	if err != nil {
		return err
	}

	task, err := h.tasks.Create(c.Request().Context(), actor, c.Param("project_id"), usecase.TaskInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Finished:    req.Finished,
		TagID:       req.TagID,
		TagName:     req.TagName,
		TagColor:    req.TagColor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTaskView(task))
}

// UpdateTask handles PUT /edit_task/:id
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	date, err := optionalDate("date", req.Date)
	if err != nil {
		return err
	}

	task, err := h.tasks.Update(c.Request().Context(), actor, c.Param("id"), usecase.TaskUpdate{
		Changes: entity.TaskChanges{
			Name:        req.Name,
			Description: req.Description,
			Finished:    req.Finished,
			Date:        date,
			AssigneeIDs: req.AssigneeIDs,
		},
		TagID: req.TagID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTaskView(task))
}

// DeleteTask handles DELETE /delete_task/:id
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	if err := h.tasks.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.MessageView{Message: "Successfully deleted the task."})
}

// ListTags handles GET /get_tags/:project_id
func (h *TaskHandler) ListTags(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}
	tags, err := h.tags.ListByProject(c.Request().Context(), actor, c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTagViews(tags))
}

// CreateTag handles POST /create_tag/:task_id
func (h *TaskHandler) CreateTag(c echo.Context) error {
	actor, err := auth.RequireUser(c)
	if err != nil {
		return err
	}

	var req createTagRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tag, err := h.tags.CreateForTask(c.Request().Context(), actor, c.Param("task_id"), req.Name, req.Color)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapper.ToTagView(tag))
}
