package main

import (
	"context"

	"go.uber.org/zap"

	api "todolist-backend/cmd/api"
	authdomain "todolist-backend/internal/auth/domain"
	authRepo "todolist-backend/internal/auth/repository"
	authUsecase "todolist-backend/internal/auth/usecase"
	"todolist-backend/internal/cache"
	tododomain "todolist-backend/internal/todo/domain"
	todoRepo "todolist-backend/internal/todo/repository"
	"todolist-backend/internal/todo/scheduler"
	todoUsecase "todolist-backend/internal/todo/usecase"
	"todolist-backend/pkg/config"
	"todolist-backend/pkg/database"
	"todolist-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &tododomain.Todo{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	todoRepository := todoRepo.NewGormTodoRepository(db)

	// Optional Redis cache for todo lists
	ctx := context.Background()
	todoCache, err := cache.New(ctx, cfg.RedisURL, cfg.CacheTTL, log)
	if err != nil {
		log.Fatal("invalid REDIS_URL", zap.Error(err))
	}
	var listCache todoUsecase.ListCache
	if todoCache != nil {
		defer todoCache.Close()
		listCache = todoCache
		log.Info("todo list cache enabled")
	}

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	todoUsecaseInstance := todoUsecase.NewTodoUsecase(todoRepository, listCache)

	// Start the daily expiry sweep
	sweeper := scheduler.NewExpirySweeper(todoUsecaseInstance, cfg.SweepHourUTC, log)
	sweeper.Start()
	defer sweeper.Stop()

	// Initialize HTTP handler and start the server
	handler := api.NewHandler(authUsecaseInstance, todoUsecaseInstance, cfg)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
