package commands

import (
	"context"
	"log/slog"
	"time"

	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/ports"
)

// RecordActivityCommandHandler writes activities to the activity log.
//
// Handle reports failures to the caller. Record is the best-effort variant used
// by other commands: it logs a failure and returns, so that a broken activity
// store never fails the operation that triggered the activity.
type RecordActivityCommandHandler struct {
	repo   ports.ActivityRepository
	logger *slog.Logger
}

func NewRecordActivityCommandHandler(repo ports.ActivityRepository, logger *slog.Logger) RecordActivityCommandHandler {
	return RecordActivityCommandHandler{
		repo:   repo,
		logger: logger.With("component", "activity-recorder"),
	}
}

func (h RecordActivityCommandHandler) Handle(ctx context.Context, cmd RecordActivityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := activity.NewActivity(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Type(),
		cmd.Action(),
		cmd.Details(),
		cmd.Metadata(),
		cmd.RelatedEntity(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return h.repo.Add(ctx, record)
}

// Record implements ActivityRecorder.
func (h RecordActivityCommandHandler) Record(ctx context.Context, cmd RecordActivityCommand) {
	if err := h.Handle(ctx, cmd); err != nil {
		h.logger.WarnContext(ctx, "failed to record activity",
			"type", cmd.Type(),
			"user", cmd.UserID().String(),
			"error", err,
		)
	}
}
