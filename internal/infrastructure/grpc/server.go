// Package grpc serves the standard gRPC health protocol so orchestrators can
// probe the planner without going through the HTTP API.
package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported next to the overall ("") status.
const ServiceName = "planner"

// Server gRPC 서버 구조체
type Server struct {
	server  *grpc.Server
	health  *health.Server
	logger  *zap.Logger
	address string
}

// Config gRPC 서버 설정
type Config struct {
	Address    string
	Reflection bool
}

// NewServer gRPC 서버 생성. 준비가 끝나기 전까지 NOT_SERVING을 보고한다.
func NewServer(cfg Config, logger *zap.Logger) *Server {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	// 개발 환경에서만 사용
	if cfg.Reflection {
		reflection.Register(server)
	}

	return &Server{
		server:  server,
		health:  healthServer,
		logger:  logger,
		address: cfg.Address,
	}
}

// SetReady switches the health status between SERVING and NOT_SERVING.
func (s *Server) SetReady(ready bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Start gRPC 서버 시작
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("gRPC 서버 리스너 생성 실패: %w", err)
	}
	return s.Serve(listener)
}

// Serve 주어진 리스너로 서비스한다.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("gRPC 서버 시작", zap.String("address", listener.Addr().String()))
	return s.server.Serve(listener)
}

// Stop 상태를 NOT_SERVING으로 바꾼 뒤 진행 중인 호출을 기다린다. ctx가 먼저 끝나면 강제 종료한다.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("gRPC 서버 종료 중...")
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
	s.logger.Info("gRPC 서버 종료 완료")
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("grpc.method", info.FullMethod),
			zap.Duration("grpc.latency", time.Since(start)),
		}
		if err != nil {
			logger.Warn("gRPC call failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("gRPC call completed", fields...)
		}
		return resp, err
	}
}
