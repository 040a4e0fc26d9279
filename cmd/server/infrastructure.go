package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/adapter/ai"
	"github.com/wekeepgrowing/project-planner/internal/adapter/event"
	"github.com/wekeepgrowing/project-planner/internal/adapter/repository/memory"
	mongorepo "github.com/wekeepgrowing/project-planner/internal/adapter/repository/mongodb"
	"github.com/wekeepgrowing/project-planner/internal/adapter/repository/postgres"
	"github.com/wekeepgrowing/project-planner/internal/config"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
	"github.com/wekeepgrowing/project-planner/internal/domain/service"
	"github.com/wekeepgrowing/project-planner/internal/infrastructure/database"
	"github.com/wekeepgrowing/project-planner/internal/infrastructure/llm"
	"github.com/wekeepgrowing/project-planner/internal/infrastructure/mail"
	"github.com/wekeepgrowing/project-planner/internal/infrastructure/mongodb"
	"github.com/wekeepgrowing/project-planner/pkg/messaging"
)

// infrastructure 외부 연결과 저장소 묶음
type infrastructure struct {
	repos     repository.Repositories
	mail      repository.MailRepository
	events    repository.EventPublisher
	generator service.TaskGenerator
	closers   []func(context.Context) error
}

// newInfrastructure 설정된 드라이버로 저장소를 만들고, 선택 구성요소(메일, 이벤트, AI)를 연결한다.
func newInfrastructure(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*infrastructure, error) {
	infra := &infrastructure{}

	if err := infra.openStore(ctx, cfg, logger); err != nil {
		infra.close(context.Background(), logger)
		return nil, err
	}

	if cfg.Redis.Addr != "" {
		client, err := messaging.NewRedisClient(ctx, messaging.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
		})
		if err != nil {
			infra.close(context.Background(), logger)
			return nil, err
		}
		infra.events = event.NewPublisher(client, cfg.Redis.Channel)
		infra.closers = append(infra.closers, func(context.Context) error { return client.Close() })
	}

	if cfg.Email.Enabled {
		infra.mail = mail.NewSMTPClient(mail.SMTPConfig{
			Host:       cfg.Email.SMTPHost,
			Port:       cfg.Email.SMTPPort,
			Username:   cfg.Email.SMTPUser,
			Password:   cfg.Email.SMTPPass,
			From:       cfg.Email.SenderEmail,
			SenderName: cfg.Email.SenderName,
		}, logger)
	}

	if cfg.OpenAI.APIKey != "" {
		client, err := llm.NewOpenAIClient(llm.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		}, logger)
		if err != nil {
			infra.close(context.Background(), logger)
			return nil, fmt.Errorf("LLM 클라이언트 초기화 실패: %w", err)
		}
		infra.generator = ai.NewTaskGenerator(client, cfg.OpenAI.Timeout, logger)
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", cfg.Database.Driver),
		zap.Bool("events", infra.events != nil),
		zap.Bool("email", infra.mail != nil),
		zap.Bool("ai", infra.generator != nil),
	)
	return infra, nil
}

func (infra *infrastructure) openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewConnection(&cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("데이터베이스 연결 실패: %w", err)
		}
		infra.closers = append(infra.closers, func(context.Context) error { return database.Close(db, logger) })
		if cfg.Database.AutoMigrate {
			if err := database.Migrate(db, logger); err != nil {
				return err
			}
		}
		infra.repos = postgres.NewRepositories(db)

	case config.DriverMongoDB:
		db, err := mongodb.Connect(ctx, &cfg.MongoDB, logger)
		if err != nil {
			return err
		}
		infra.closers = append(infra.closers, func(ctx context.Context) error { return mongodb.Disconnect(ctx, db, logger) })
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		infra.repos = mongorepo.NewRepositories(db)

	case config.DriverMemory:
		logger.Warn("메모리 저장소 사용 중: 재시작하면 데이터가 사라집니다")
		infra.repos = memory.NewStore().Repositories()

	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return nil
}

// close 연 순서의 역순으로 닫는다.
func (infra *infrastructure) close(ctx context.Context, logger *zap.Logger) {
	for i := len(infra.closers) - 1; i >= 0; i-- {
		if err := infra.closers[i](ctx); err != nil {
			logger.Error("리소스 종료 실패", zap.Error(err))
		}
	}
	infra.closers = nil
}
