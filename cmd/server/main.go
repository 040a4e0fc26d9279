package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	handler "github.com/wekeepgrowing/project-planner/internal/adapter/handler/http"
	"github.com/wekeepgrowing/project-planner/internal/config"
	grpcserver "github.com/wekeepgrowing/project-planner/internal/infrastructure/grpc"
	httpserver "github.com/wekeepgrowing/project-planner/internal/infrastructure/http"
	"github.com/wekeepgrowing/project-planner/internal/infrastructure/oauth"
	"github.com/wekeepgrowing/project-planner/internal/usecase"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 생성
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("로거 생성 실패: %v", err)
	}
	defer logger.Sync()

	logger.Info("프로젝트 플래너 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. 인프라스트럭처 초기화
	infra, err := newInfrastructure(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}

	// 4. 유스케이스 초기화
	notifier := usecase.NewNotifier(infra.mail, infra.events, cfg.Service.BaseURL, logger)
	tokens := usecase.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authUC := usecase.NewAuthUsecase(
		infra.repos.User,
		usecase.NewBcryptHasher(cfg.Auth.HashCost),
		tokens,
		oauth.NewGoogleVerifier(cfg.OAuth.Google.ClientID),
		notifier,
		logger,
	)
	taskUC := usecase.NewTaskUsecase(infra.repos, notifier, logger)
	tagUC := usecase.NewTagUsecase(infra.repos, logger)

	// 5. HTTP 서버 생성
	server := httpserver.NewServer(httpserver.Config{
		Address:      cfg.Address(),
		Service:      cfg.Service.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Debug:        cfg.Server.Debug,
	}, logger)
	server.RegisterRoutes(httpserver.Handlers{
		Auth:    handler.NewAuthHandler(authUC, logger),
		User:    handler.NewUserHandler(usecase.NewUserUsecase(infra.repos, logger), logger),
		Project: handler.NewProjectHandler(usecase.NewProjectUsecase(infra.repos, infra.generator, notifier, logger), logger),
		Task:    handler.NewTaskHandler(taskUC, tagUC, logger),
	}, authUC)

	// 6. gRPC 헬스 서버 (선택)
	var probe *grpcserver.Server
	if addr := cfg.GRPCAddress(); addr != "" {
		probe = grpcserver.NewServer(grpcserver.Config{Address: addr, Reflection: cfg.Server.Debug}, logger)
	}

	// 7. 서버 시작
	errCh := make(chan error, 2)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	if probe != nil {
		go func() {
			if err := probe.Start(); err != nil {
				errCh <- err
			}
		}()
		probe.SetReady(true)
	}

	// 8. 그레이스풀 종료
	select {
	case <-ctx.Done():
		logger.Info("서버를 종료합니다...")
	case err := <-errCh:
		logger.Error("서버 오류", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if probe != nil {
		probe.Stop(shutdownCtx)
	}
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}
	infra.close(shutdownCtx, logger)

	logger.Info("서버가 정상적으로 종료되었습니다")
}
