package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lifehub/internal/config"
	"lifehub/internal/handler"
	"lifehub/internal/model"
	"lifehub/internal/repository"
	"lifehub/internal/service"
	jwtpkg "lifehub/pkg/jwt"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := config.NewPostgresDB(cfg.Database.Postgres, logger)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("run migrations", zap.Error(err))
		}
	}

	jwtManager := jwtpkg.NewManager(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.TokenTTL)

	userRepo := repository.NewPGUserRepository(db)
	inviteRepo := repository.NewPGInviteCodeRepository(db)
	noteRepo := repository.NewPGNoteRepository(db)
	counterRepo := repository.NewPGCounterRepository(db)
	wheelRepo := repository.NewPGWheelRepository(db)
	exerciseRepo := repository.NewPGExerciseRepository(db)
	cuisineRepo := repository.NewPGCuisineRepository(db)
	listRepo := repository.NewPGListRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager)
	inviteService := service.NewInviteService(inviteRepo, userRepo)
	noteService := service.NewNoteService(noteRepo, userRepo)
	counterService := service.NewCounterService(counterRepo, userRepo, cfg.Counters.DefaultTypes)
	wheelService := service.NewWheelService(wheelRepo, userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo)
	cuisineService := service.NewCuisineService(cuisineRepo)
	listService := service.NewListService(listRepo, userRepo)

	router := handler.SetupRouter(cfg, logger, jwtManager, handler.Handlers{
		Auth:     handler.NewAuthHandler(authService, logger),
		Invite:   handler.NewInviteHandler(inviteService, logger),
		Note:     handler.NewNoteHandler(noteService, logger),
		Counter:  handler.NewCounterHandler(counterService, logger),
		Wheel:    handler.NewWheelHandler(wheelService, logger),
		Exercise: handler.NewExerciseHandler(exerciseService, logger),
		Cuisine:  handler.NewCuisineHandler(cuisineService, logger),
		List:     handler.NewListHandler(listService, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zapCfg.Level = level
	return zapCfg.Build()
}
