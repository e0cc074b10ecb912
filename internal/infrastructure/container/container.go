package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wingmateapp/wingmate-backend/internal/config"
	"github.com/wingmateapp/wingmate-backend/internal/delivery/http"
	"github.com/wingmateapp/wingmate-backend/internal/delivery/http/handler"
	"github.com/wingmateapp/wingmate-backend/internal/delivery/http/middleware"
	"github.com/wingmateapp/wingmate-backend/internal/infrastructure/database"
	"github.com/wingmateapp/wingmate-backend/internal/infrastructure/logger"
	"github.com/wingmateapp/wingmate-backend/internal/infrastructure/server"
	"github.com/wingmateapp/wingmate-backend/internal/repository/postgres"
	redisrepo "github.com/wingmateapp/wingmate-backend/internal/repository/redis"
	"github.com/wingmateapp/wingmate-backend/internal/usecase/matching"
	"github.com/wingmateapp/wingmate-backend/internal/usecase/partnership"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Logger *zap.Logger
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis carries rate-limit counters only; matching works without it.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	partnershipRepo := postgres.NewPartnershipRepository(db)

	var rateRepo *redisrepo.RateRepository
	if redisClient != nil {
		rateRepo = redisrepo.NewRateRepository(redisClient)
	}

	// Initialize use cases
	matchingService := matching.NewService(
		userRepo,
		profileRepo,
		locationRepo,
		partnershipRepo,
		matching.Params{
			DefaultRadiusMiles:   cfg.Matching.DefaultRadiusMiles,
			MinRadiusMiles:       cfg.Matching.MinRadiusMiles,
			MaxRadiusMiles:       cfg.Matching.MaxRadiusMiles,
			RecencyExclusionDays: cfg.Matching.RecencyExclusionDays,
		},
		log,
	)
	partnershipService := partnership.NewService(partnershipRepo, log)

	// Initialize handlers
	matchHandler := handler.NewMatchHandler(matchingService)
	partnershipHandler := handler.NewPartnershipHandler(partnershipService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)
	rateLimit := middleware.NewRateLimitMiddleware(rateRepo, cfg.RateLimit.MatchRequestsPerMinute, log)

	// Initialize router
	router := http.NewRouter(
		matchHandler,
		partnershipHandler,
		authMiddleware,
		rateLimit,
	)
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Logger: log,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	return nil
}
