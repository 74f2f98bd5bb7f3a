package usecases

import (
	"context"

	"github.com/Menatic/IT-Support/internal/domain/logs"
	"github.com/Menatic/IT-Support/internal/infrastructure/ai"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/services/markdown"
)

type UploadLogCommand struct {
	Actor    authorization.Actor
	Name     string
	Content  string
	SystemID string
}

type UploadLogUseCase struct {
	logRepo  logs.Repository
	gateway  ai.Gateway
	renderer markdown.MarkdownService
	logger   logger.Interface
}

func NewUploadLogUseCase(
	logRepo logs.Repository,
	gateway ai.Gateway,
	renderer markdown.MarkdownService,
	logger logger.Interface,
) *UploadLogUseCase {
	return &UploadLogUseCase{
		logRepo:  logRepo,
		gateway:  gateway,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute stores the uploaded log and tries to analyze it in the same
// request. Analysis failure is non-fatal: the log is kept, the analysis
// stays empty, and the upload still succeeds.
func (uc *UploadLogUseCase) Execute(ctx context.Context, cmd UploadLogCommand) (*LogResult, error) {
	newLog, err := logs.NewLog(cmd.Name, cmd.Content, cmd.Actor.UserID, cmd.SystemID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.logRepo.Save(ctx, newLog); err != nil {
		uc.logger.Errorw("failed to save log", "name", cmd.Name, "error", err)
		return nil, err
	}

	analysis, err := uc.gateway.AnalyzeLog(ctx, newLog.Content())
	if err != nil {
		uc.logger.Warnw("log analysis failed", "log_id", newLog.ID(), "error", err)
		return logResultFrom(newLog, uc.renderer), nil
	}

	if err := newLog.AttachAnalysis(analysis); err != nil {
		uc.logger.Warnw("failed to attach analysis", "log_id", newLog.ID(), "error", err)
		return logResultFrom(newLog, uc.renderer), nil
	}

	if err := uc.logRepo.Update(ctx, newLog); err != nil {
		uc.logger.Warnw("failed to persist analysis", "log_id", newLog.ID(), "error", err)
	}

	uc.logger.Infow("log uploaded and analyzed", "log_id", newLog.ID(), "user_id", cmd.Actor.UserID)
	return logResultFrom(newLog, uc.renderer), nil
}
