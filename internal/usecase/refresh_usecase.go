package usecase

import (
	"context"

	"jobdeck/internal/aggregator"
	"jobdeck/internal/domain/settings"
	"jobdeck/internal/repository"

	"github.com/google/uuid"
)

type RefreshUsecase interface {
	Refresh(ctx context.Context, userID uuid.UUID) (aggregator.RunSummary, error)
}

type aggregateRunner interface {
	Run(ctx context.Context, st settings.SearchSettings) (aggregator.RunSummary, error)
}

type Refresh struct {
	settings repository.SettingsRepository
	runner   aggregateRunner
}

func NewRefreshUsecase(settings repository.SettingsRepository, runner aggregateRunner) *Refresh {
	return &Refresh{settings: settings, runner: runner}
}

// Refresh triggers one synchronous aggregation pass using the caller's
// saved search settings. The aggregator holds a per-query run lock, so
// a pass already in flight makes this a no-op with an empty summary.
func (u *Refresh) Refresh(ctx context.Context, userID uuid.UUID) (aggregator.RunSummary, error) {
	st, err := u.settings.GetByUserID(ctx, userID)
	if err != nil {
		return aggregator.RunSummary{}, ErrInternal
	}

	summary, err := u.runner.Run(ctx, st)
	if err != nil {
		return aggregator.RunSummary{}, ErrInternal
	}
	return summary, nil
}
