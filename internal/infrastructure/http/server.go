package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/project-planner/internal/adapter/handler/http"
	"github.com/wekeepgrowing/project-planner/internal/middleware/auth"
	"github.com/wekeepgrowing/project-planner/pkg/logger"
	"github.com/wekeepgrowing/project-planner/pkg/uniqueid"
)

// Server HTTP 서버 구조체
type Server struct {
	router  *echo.Echo
	server  *http.Server
	logger  *zap.Logger
	address string
	service string
}

// Config HTTP 서버 설정
type Config struct {
	Address      string
	Service      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins []string
	Debug        bool
}

// Handlers 라우트에 연결할 핸들러 묶음
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Project *handler.ProjectHandler
	Task    *handler.TaskHandler
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Validator = NewRequestValidator()

	// 기본 미들웨어 설정
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uniqueid.RequestID,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 로그 미들웨어 및 에러 핸들러
	e.Use(logger.NewEchoRequestLogger(zapLogger))
	logger.WithEchoLogger(e, zapLogger)

	server := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.WriteTimeout,
	}

	return &Server{
		router:  e,
		server:  server,
		logger:  zapLogger,
		address: cfg.Address,
		service: cfg.Service,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes HTTP 라우트 등록
func (s *Server) RegisterRoutes(h Handlers, authenticator auth.Authenticator) {
	s.router.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.service,
		})
	})

	// 공개 라우트
	s.router.POST("/signup/normal", h.Auth.SignupNormal)
	s.router.POST("/signup/google", h.Auth.SignupGoogle)
	s.router.POST("/login/normal", h.Auth.LoginNormal)
	s.router.POST("/login/google", h.Auth.LoginGoogle)

	// 인증이 필요한 라우트
	api := s.router.Group("", auth.BearerAuth(authenticator, s.logger))

	api.GET("/users", h.User.ListUsers)
	api.GET("/users/:id", h.User.GetUser)
	api.PUT("/users/:id", h.User.UpdateUser)

	api.GET("/get_projects", h.Project.ListProjects)
	api.GET("/get_project/:id", h.Project.GetProject)
	api.POST("/create_project", h.Project.CreateProject)
	api.POST("/create_project/ai", h.Project.CreateProjectWithAI)
	api.PUT("/edit_project/:id", h.Project.UpdateProject)
	api.DELETE("/delete_project/:id", h.Project.DeleteProject)

	api.GET("/get_tasks/:project_id", h.Task.ListTasks)
	api.GET("/assigned_tasks", h.Task.ListAssignedTasks)
	api.POST("/create_task/:project_id", h.Task.CreateTask)
	api.PUT("/edit_task/:id", h.Task.UpdateTask)
	api.DELETE("/delete_task/:id", h.Task.DeleteTask)

	api.GET("/get_tags/:project_id", h.Task.ListTags)
	api.POST("/create_tag/:task_id", h.Task.CreateTag)
}

// Start HTTP 서버 시작. 정상 종료 시 http.ErrServerClosed를 반환한다.
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작", zap.String("address", s.address))

	s.server.Handler = s.router
	return s.router.StartServer(s.server)
}

// Stop HTTP 서버 종료
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP 서버 종료 중...")

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
