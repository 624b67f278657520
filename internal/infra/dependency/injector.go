// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-control/backend/config"
	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/usecase/auth"
	"github.com/budget-control/backend/internal/application/usecase/group"
	"github.com/budget-control/backend/internal/application/usecase/transaction"
	"github.com/budget-control/backend/internal/application/usecase/user"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/infra/server/router"
	"github.com/budget-control/backend/internal/integration/adapters"
	"github.com/budget-control/backend/internal/integration/entrypoint/controller"
	"github.com/budget-control/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-control/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are counted in memory
// and expired counters are swept until ctx is done.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	groupRepo := persistence.NewGroupRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)

	// Create user use cases
	userValidator := user.NewValidator(userRepo)
	userController := controller.NewUserController(
		user.NewCreateUserUseCase(userRepo, groupRepo, passwordService, userValidator),
		user.NewGetUserUseCase(userRepo),
		user.NewListUsersUseCase(userRepo),
		user.NewUpdateUserUseCase(userRepo, groupRepo, userValidator),
		user.NewDeleteUserUseCase(userRepo),
		auth.NewLoginUserUseCase(userRepo, passwordService),
	)

	// Create group use cases
	groupValidator := group.NewValidator(groupRepo)
	groupController := controller.NewGroupController(
		group.NewCreateGroupUseCase(groupRepo, groupValidator),
		group.NewGetGroupUseCase(groupRepo),
		group.NewListGroupsUseCase(groupRepo),
		group.NewUpdateGroupUseCase(groupRepo, groupValidator),
		group.NewDeleteGroupUseCase(groupRepo),
		group.NewListMembersUseCase(groupRepo, userRepo),
	)

	// Create one transaction stack per kind
	transactionControllers := make([]*controller.TransactionController, 0, len(entity.TransactionKinds))
	for _, kind := range entity.TransactionKinds {
		transactionRepo := persistence.NewTransactionRepository(db, kind)
		transactionValidator := transaction.NewValidator(transactionRepo)
		transactionControllers = append(transactionControllers, controller.NewTransactionController(
			kind,
			transaction.NewCreateTransactionUseCase(transactionRepo, transactionValidator),
			transaction.NewGetTransactionUseCase(transactionRepo),
			transaction.NewListTransactionsUseCase(transactionRepo),
			transaction.NewUpdateTransactionUseCase(transactionRepo, transactionValidator),
			transaction.NewDeleteTransactionUseCase(transactionRepo),
		))
	}

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(newRateLimitStore(ctx, cfg.RateLimit, redisClient))

	r := router.NewRouter(
		controller.NewHealthController(dbHealthChecker),
		userController,
		groupController,
		transactionControllers,
		loginRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}

func newRateLimitStore(ctx context.Context, cfg config.RateLimitConfig, redisClient *redis.Client) adapter.RateLimitStore {
	if redisClient != nil {
		return adapters.NewRedisRateLimitStore(redisClient, cfg.MaxAttempts, cfg.Window)
	}

	store := adapters.NewMemoryRateLimitStore(cfg.MaxAttempts, cfg.Window)
	store.StartCleanup(ctx, cfg.Window)
	return store
}

// NewRedisClient connects to the Redis server described by cfg.
// It returns nil without error when no URL is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	options, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		options.Password = cfg.Password
	}
	if cfg.DB != 0 {
		options.DB = cfg.DB
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", options.Addr, "db", options.DB)
	return client, nil
}
