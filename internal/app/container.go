package app

import (
	"context"
	"log"
	"time"

	"jobdeck/internal/aggregator"
	"jobdeck/internal/config"
	"jobdeck/internal/database"
	dbpostgres "jobdeck/internal/database/postgres"
	"jobdeck/internal/domain/user"
	"jobdeck/internal/infrastructure/cache"
	"jobdeck/internal/llm"
	"jobdeck/internal/mail"
	"jobdeck/internal/pkg/jwt"
	"jobdeck/internal/provider"
	"jobdeck/internal/repository"
	"jobdeck/internal/usecase"
	uckit "jobdeck/internal/usecase/kit"
	"jobdeck/internal/ws"
)

// Container owns every long-lived dependency: the database pool, the
// redis cache, the websocket hub, the board providers and the usecases
// built on top of them.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger

	Providers  []provider.Provider
	Aggregator *aggregator.Service
	Freshness  *aggregator.FreshnessService

	JWT jwt.Service

	UserRepo   user.Repository
	AuthUC     usecase.AuthUsecase
	UserUC     usecase.UserUsecase
	JobListUC  usecase.JobListUsecase
	RefreshUC  usecase.RefreshUsecase
	AppUC      usecase.ApplicationUsecase
	SettingsUC usecase.SettingsUsecase
	KitUC      usecase.KitUsecase
	AdminUC    usecase.AdminUsecase
	StatusUC   usecase.StatusUsecase
	WSHandler  *ws.Handler
	Notifier   *ws.Notifier
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	providers := buildProviders(cfg.Boards)

	agg := aggregator.NewService(db, providers, redis, notifier.JobsUpdated, logger, aggregator.Options{
		Workers:      cfg.Aggregation.Workers,
		RateLimitRPS: cfg.Aggregation.RateLimitRPS,
		PerBoardCap:  cfg.Aggregation.PerBoardCap,
	})

	jobRepo := repository.NewPostgresJobRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	settingsRepo := repository.NewPostgresSettingsRepository(db)
	kitRepo := repository.NewPostgresKitRepository(db)
	statsRepo := repository.NewPostgresStatsRepository(db)

	freshness := aggregator.NewFreshnessService(jobRepo, agg, redis, logger, cfg.Aggregation.FreshnessMinutes)

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn,
		cfg.Auth.RefreshExpiresIn,
	)

	llmClient := llm.NewFromConfig(cfg.LLM, logger)
	drafter := uckit.NewService(llmClient, logger)
	mailer := mail.NewMailer(cfg.SMTP, logger)

	boardNames := make([]string, 0, len(providers))
	for _, p := range providers {
		boardNames = append(boardNames, p.Name())
	}

	c := &Container{
		Config:     cfg,
		DB:         db,
		Cache:      redis,
		Hub:        hub,
		Logger:     logger,
		Providers:  providers,
		Aggregator: agg,
		Freshness:  freshness,
		JWT:        jwtSvc,
		UserRepo:   userRepo,
		AuthUC:     usecase.NewAuthUsecase(userRepo, jwtSvc),
		UserUC:     usecase.NewUserUsecase(userRepo, profileRepo),
		JobListUC:  usecase.NewJobListUsecase(jobRepo, freshness, redis, logger),
		RefreshUC:  usecase.NewRefreshUsecase(settingsRepo, agg),
		AppUC:      usecase.NewApplicationUsecase(appRepo, jobRepo, notifier),
		SettingsUC: usecase.NewSettingsUsecase(settingsRepo, boardNames),
		KitUC:      usecase.NewKitUsecase(kitRepo, jobRepo, profileRepo, userRepo, drafter, mailer),
		AdminUC:    usecase.NewAdminUsecase(userRepo, mailer, logger),
		StatusUC:   usecase.NewStatusUsecase(statsRepo, db, redis),
		WSHandler:  ws.NewHandler(hub, logger),
		Notifier:   notifier,
	}
	return c, nil
}

func buildProviders(b config.BoardsConfig) []provider.Provider {
	return []provider.Provider{
		provider.NewAdzuna(b.AdzunaAppID, b.AdzunaAppKey, b.AdzunaCountry),
		provider.NewRemotive(b.RemotiveOn),
		provider.NewUSAJobs(b.USAJobsAPIKey, b.USAJobsAgent),
		provider.NewTheMuse(b.TheMuseOn),
		provider.NewCareers(b.CareersTargets),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
