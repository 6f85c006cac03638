package usecase

import (
	"context"
	"time"

	"jobdeck/internal/domain"
	"jobdeck/internal/repository"
)

type StatusUsecase interface {
	Dashboard(ctx context.Context) (domain.DashboardStatus, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	stats repository.StatsRepository
	db    pinger
	redis pinger
}

func NewStatusUsecase(stats repository.StatsRepository, db, redis pinger) *Status {
	return &Status{stats: stats, db: db, redis: redis}
}

// Dashboard aggregates the counters shown on the admin landing page.
// Counter queries that fail leave zeros rather than failing the whole
// status call.
func (u *Status) Dashboard(ctx context.Context) (domain.DashboardStatus, error) {
	out := domain.DashboardStatus{ServerTime: time.Now().UTC()}

	if u.db != nil {
		out.DatabaseHealthy = u.db.Ping(ctx) == nil
	}
	if u.redis != nil {
		out.RedisHealthy = u.redis.Ping(ctx) == nil
	}

	if total, err := u.stats.TotalJobs(ctx); err == nil {
		out.TotalJobs = total
	}
	if today, err := u.stats.JobsToday(ctx); err == nil {
		out.JobsToday = today
	}
	if apps, err := u.stats.TotalApplications(ctx); err == nil {
		out.TotalApplications = apps
	}
	if boards, err := u.stats.BoardStats(ctx); err == nil {
		out.Boards = boards
	}
	return out, nil
}
