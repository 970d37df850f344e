package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/sunday-school-service/internal/api/http"
	"github.com/spec-kit/sunday-school-service/internal/api/http/handlers"
	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/config"
	"github.com/spec-kit/sunday-school-service/internal/events"
	"github.com/spec-kit/sunday-school-service/internal/observability"
	"github.com/spec-kit/sunday-school-service/internal/persistence"
	"github.com/spec-kit/sunday-school-service/internal/repository"
	"github.com/spec-kit/sunday-school-service/internal/service"
	"github.com/spec-kit/sunday-school-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	tokenManager, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	pool := pg.PoolHandle()
	memberRepo := repository.NewMemberRepository(pool)
	assetRepo := repository.NewAssetRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	revocationStore := repository.NewRevocationStore(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(service.AuthDependencies{
		MemberRepo:      memberRepo,
		RevocationStore: revocationStore,
		TokenManager:    tokenManager,
		Dispatcher:      dispatcher,
		BcryptCost:      cfg.Auth.BcryptCost,
	})
	memberService := service.NewMemberService(memberRepo, cfg.Auth.BcryptCost)
	assetService := service.NewAssetService(assetRepo)
	postService := service.NewPostService(postRepo, commentRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(tokenManager, memberRepo, revocationStore, logger)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.App.Production()),
		Members:        handlers.NewMembersHandler(memberService),
		Assets:         handlers.NewAssetsHandler(assetService),
		Posts:          handlers.NewPostsHandler(postService),
		Comments:       handlers.NewCommentsHandler(postService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
