// Package ai turns a free-text project brief into generated tasks by asking
// a completion model for a JSON array and extracting it from the reply.
package ai

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	pkgerrors "github.com/wekeepgrowing/project-planner/pkg/errors"
)

// Completer sends a system and a user message to a model and returns the
// reply text.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type TaskGenerator struct {
	completer Completer
	timeout   time.Duration
	logger    *zap.Logger
}

// NewTaskGenerator creates a generator. A non-positive timeout leaves the
// call bounded by the request context only.
func NewTaskGenerator(completer Completer, timeout time.Duration, logger *zap.Logger) *TaskGenerator {
	return &TaskGenerator{completer: completer, timeout: timeout, logger: logger}
}

func (g *TaskGenerator) Generate(ctx context.Context, req entity.GenerationRequest) ([]entity.GeneratedTask, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := g.completer.Complete(ctx, systemPrompt, buildPrompt(req))
	if err != nil {
		pkgerrors.LogError(g.logger, err, "Completion request failed",
			zap.String("project_id", req.ProjectID),
			zap.Duration("elapsed", time.Since(started)))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, pkgerrors.NewAppError(pkgerrors.ErrTimeout, "Task generation timed out.", err)
		}
		return nil, domainerrors.ErrCompletionFailed.WithCause(err)
	}

	tasks, err := ExtractTasks(raw)
	if err != nil {
		g.logger.Warn("Unusable completion",
			zap.String("project_id", req.ProjectID),
			zap.Int("response_length", len(raw)),
			zap.Error(err))
		return nil, err
	}

	g.logger.Debug("Tasks generated",
		zap.String("project_id", req.ProjectID),
		zap.Int("count", len(tasks)),
		zap.Duration("elapsed", time.Since(started)))
	return tasks, nil
}
