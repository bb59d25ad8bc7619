package main

import (
	"context"
	"log/slog"
	"net/http"

	"forum/config"
	"forum/internal/delivery"
	"forum/internal/delivery/api"
	apimiddleware "forum/internal/delivery/api/middleware"
	"forum/internal/delivery/api/router"
	"forum/internal/delivery/api/router/handler"
	"forum/internal/delivery/api/validator"
	"forum/internal/infra/auth"
	"forum/internal/infra/metrics"
	"forum/internal/infra/persistence/postgres"
	"forum/internal/usecase/impl"
)

// app owns everything serve starts and must stop.
type app struct {
	server  delivery.Delivery
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	// Infra
	client, err := postgres.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	})

	var (
		collector      *metrics.Collector
		metricsHandler http.Handler
	)
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		registry := metrics.NewRegistry()
		collector = metrics.NewCollector(registry)
		metricsHandler = metrics.Handler(registry)
	}

	// Services
	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	if collector != nil {
		hasher = auth.NewInstrumentedHasher(hasher, collector)
	}

	tokenService, err := auth.NewJWTService(cfg)
	if err != nil {
		return nil, err
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(client.DB)
	questionRepo := postgres.NewQuestionRepository(client.DB)
	answerRepo := postgres.NewAnswerRepository(client.DB)
	commentRepo := postgres.NewCommentRepository(client.DB)
	txManager := postgres.NewTransactionManager(client.DB)

	// Usecases
	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      logger,
	})
	sessionUC, err := impl.NewSessionService(impl.SessionServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}
	questionUC := impl.NewQuestionService(impl.QuestionServiceParams{QuestionRepo: questionRepo, Logger: logger})
	answerUC := impl.NewAnswerService(impl.AnswerServiceParams{TxManager: txManager, AnswerRepo: answerRepo, Logger: logger})
	commentUC := impl.NewCommentService(impl.CommentServiceParams{CommentRepo: commentRepo, Logger: logger})

	// Delivery
	v := validator.New()
	routerParams := router.RouterParams{
		AccountHandler:  handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Validator: v, Logger: logger}),
		SessionHandler:  handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Validator: v, Logger: logger}),
		QuestionHandler: handler.NewQuestionHandler(handler.QuestionHandlerParams{QuestionUC: questionUC, Validator: v, Logger: logger}),
		AnswerHandler:   handler.NewAnswerHandler(handler.AnswerHandlerParams{AnswerUC: answerUC, Validator: v, Logger: logger}),
		CommentHandler:  handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: commentUC, Validator: v, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokenService),
		LoginLimiter:    newLoginLimiter(a, cfg, collector, logger),
	}

	serverParams := api.ServerParams{
		Cfg:            cfg,
		Logger:         logger,
		Validator:      v,
		MetricsHandler: metricsHandler,
		RouterParams:   routerParams,
	}
	if collector != nil {
		serverParams.RequestRecorder = collector
	}

	a.server, err = api.NewServer(serverParams)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func newLoginLimiter(a *app, cfg *config.Config, collector *metrics.Collector, logger *slog.Logger) *apimiddleware.RateLimiter {
	limitCfg := cfg.Auth.LoginRateLimit
	if limitCfg == nil || !limitCfg.Enabled {
		return nil
	}

	params := apimiddleware.RateLimiterParams{Name: "login", Config: limitCfg, Logger: logger}
	if collector != nil {
		params.Recorder = collector
	}

	limiter := apimiddleware.NewRateLimiter(params)
	a.closers = append(a.closers, limiter.Stop)

	return limiter
}
